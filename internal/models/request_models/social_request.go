package request_models

type AddFavoriteRequest struct {
	ContentID string `json:"content_id" binding:"required"`
}

type AddCartItemRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	Memo      string `json:"memo"`
}

type CartToScheduleRequest struct {
	ScheduleID string   `json:"schedule_id" binding:"required,uuid"`
	Day        int      `json:"day" binding:"required,min=1"`
	ItemIDs    []string `json:"item_ids" binding:"required,min=1,dive,uuid"`
}

type BoardRequest struct {
	Title     string   `json:"title" binding:"required,max=200"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type AddGroupMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}
