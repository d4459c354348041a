package response_models

type Favorite struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Place     Place  `json:"place"`
}

type CartItem struct {
	ID    string `json:"id"`
	Memo  string `json:"memo,omitempty"`
	Place Place  `json:"place"`
}

type BoardSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	ViewCount  int64  `json:"view_count"`
	CreatedAt  string `json:"created_at"`
}

type BoardDetail struct {
	BoardSummary
	AuthorID  string   `json:"author_id"`
	Content   string   `json:"content"`
	ImageURLs []string `json:"image_urls"`
}

type Comment struct {
	ID         string `json:"id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type GroupMember struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type Group struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	OwnerID string        `json:"owner_id"`
	Members []GroupMember `json:"members"`
}
