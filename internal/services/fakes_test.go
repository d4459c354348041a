package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"tripmate/internal/models/db_models"
	"tripmate/pkg/utils"
)

// In-memory stand-ins for the gorm repositories. They mimic the contract the
// services rely on: (nil, nil) for not found, ids assigned on create, and
// preloaded associations on reads.

func ensureID(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = utils.NowUnixSeconds()
	}
}

// ---------------- accounts ----------------

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]db_models.Account
	err      error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]db_models.Account{}}
}

func (f *fakeAccountRepo) add(name, email string) db_models.Account {
	a := db_models.Account{Name: name, Email: email, Role: db_models.RoleUser}
	ensureID(&a.BaseModel)
	f.accounts[a.ID] = a
	return a
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	ensureID(&account.BaseModel)
	f.accounts[account.ID] = *account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	a, ok := f.accounts[uid]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			acc := a
			return &acc, nil
		}
	}
	return nil, nil
}

// ---------------- places ----------------

type fakePlaceRepo struct {
	places map[string]db_models.Place
	err    error
}

func newFakePlaceRepo(places ...Place) *fakePlaceRepo {
	f := &fakePlaceRepo{places: map[string]db_models.Place{}}
	for _, p := range places {
		f.places[p.ContentID] = db_models.Place{
			ContentID: p.ContentID,
			Title:     p.Title,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Category:  p.Category,
		}
	}
	return f
}

func (f *fakePlaceRepo) Upsert(ctx context.Context, place *db_models.Place) error {
	if f.err != nil {
		return f.err
	}
	ensureID(&place.BaseModel)
	f.places[place.ContentID] = *place
	return nil
}

func (f *fakePlaceRepo) GetByContentID(ctx context.Context, contentID string) (*db_models.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.places[contentID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePlaceRepo) ListByContentIDs(ctx context.Context, contentIDs []string) ([]db_models.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []db_models.Place{}
	for _, id := range contentIDs {
		if p, ok := f.places[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) Search(ctx context.Context, category, keyword string, page, pageSize int) ([]db_models.Place, error) {
	var all []db_models.Place
	for _, p := range f.places {
		if category != "" && p.Category != category {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(keyword)) {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })

	from := (page - 1) * pageSize
	if from >= len(all) {
		return []db_models.Place{}, nil
	}
	to := from + pageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], nil
}

func (f *fakePlaceRepo) ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64, limit int) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.places {
		if p.Latitude >= minLat && p.Latitude <= maxLat && p.Longitude >= minLng && p.Longitude <= maxLng {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ContentID < out[j].ContentID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEmbeddingRepo struct {
	rows    map[string]db_models.PlaceEmbedding
	similar []string
}

func newFakeEmbeddingRepo() *fakeEmbeddingRepo {
	return &fakeEmbeddingRepo{rows: map[string]db_models.PlaceEmbedding{}}
}

func (f *fakeEmbeddingRepo) Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	f.rows[embedding.ContentID] = *embedding
	return nil
}

func (f *fakeEmbeddingRepo) GetByContentID(ctx context.Context, contentID string) (*db_models.PlaceEmbedding, error) {
	e, ok := f.rows[contentID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (f *fakeEmbeddingRepo) FindSimilar(ctx context.Context, vector pgvector.Vector, provider, excludeContentID string, limit int) ([]string, error) {
	out := []string{}
	for _, id := range f.similar {
		if id != excludeContentID && len(out) < limit {
			out = append(out, id)
		}
	}
	return out, nil
}

// ---------------- schedules ----------------

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*db_models.Schedule
	places    *fakePlaceRepo
	err       error

	replaceCalls int
}

func newFakeScheduleRepo(places *fakePlaceRepo) *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[uuid.UUID]*db_models.Schedule{}, places: places}
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *db_models.Schedule) error {
	if f.err != nil {
		return f.err
	}
	ensureID(&schedule.BaseModel)
	cp := *schedule
	cp.Items = nil
	f.schedules[cp.ID] = &cp
	return nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Items = make([]db_models.ScheduleItem, len(s.Items))
	copy(cp.Items, s.Items)
	sort.SliceStable(cp.Items, func(i, j int) bool {
		if cp.Items[i].DayNumber != cp.Items[j].DayNumber {
			return cp.Items[i].DayNumber < cp.Items[j].DayNumber
		}
		return cp.Items[i].OrderIndex < cp.Items[j].OrderIndex
	})
	for i := range cp.Items {
		cp.Items[i].Place = f.places.places[cp.Items[i].ContentID]
	}
	return &cp, nil
}

func (f *fakeScheduleRepo) ListAccessible(ctx context.Context, accountID uuid.UUID, groupIDs []uuid.UUID, page, pageSize int) ([]db_models.Schedule, error) {
	inGroup := map[uuid.UUID]bool{}
	for _, g := range groupIDs {
		inGroup[g] = true
	}
	var out []db_models.Schedule
	for _, s := range f.schedules {
		if s.AccountID == accountID || (s.GroupID != nil && inGroup[*s.GroupID]) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *db_models.Schedule) error {
	s, ok := f.schedules[schedule.ID]
	if !ok {
		return nil
	}
	items := s.Items
	*s = *schedule
	s.Items = items
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.schedules, id)
	return nil
}

func (f *fakeScheduleRepo) AppendItems(ctx context.Context, scheduleID uuid.UUID, day int, items []db_models.ScheduleItem) error {
	s := f.schedules[scheduleID]
	maxOrder := 0
	for _, it := range s.Items {
		if it.DayNumber == day && it.OrderIndex > maxOrder {
			maxOrder = it.OrderIndex
		}
	}
	for i := range items {
		ensureID(&items[i].BaseModel)
		items[i].ScheduleID = scheduleID
		items[i].DayNumber = day
		items[i].OrderIndex = maxOrder + i + 1
		s.Items = append(s.Items, items[i])
	}
	return nil
}

func (f *fakeScheduleRepo) DeleteItem(ctx context.Context, scheduleID, itemID uuid.UUID) (bool, error) {
	s := f.schedules[scheduleID]
	for i, it := range s.Items {
		if it.ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleRepo) ReplaceItems(ctx context.Context, scheduleID uuid.UUID, items []db_models.ScheduleItem) error {
	if f.err != nil {
		return f.err
	}
	f.replaceCalls++
	s := f.schedules[scheduleID]
	s.Items = nil
	for _, it := range items {
		ensureID(&it.BaseModel)
		it.ScheduleID = scheduleID
		s.Items = append(s.Items, it)
	}
	return nil
}

// addItem seeds a stored item directly.
func (f *fakeScheduleRepo) addItem(scheduleID uuid.UUID, day, order int, contentID, memo string) db_models.ScheduleItem {
	it := db_models.ScheduleItem{ScheduleID: scheduleID, DayNumber: day, OrderIndex: order, ContentID: contentID, Memo: memo}
	ensureID(&it.BaseModel)
	s := f.schedules[scheduleID]
	s.Items = append(s.Items, it)
	return it
}

// ---------------- groups ----------------

type fakeGroupRepo struct {
	groups   map[uuid.UUID]db_models.Group
	members  map[uuid.UUID]map[uuid.UUID]string
	accounts *fakeAccountRepo
}

func newFakeGroupRepo(accounts *fakeAccountRepo) *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:   map[uuid.UUID]db_models.Group{},
		members:  map[uuid.UUID]map[uuid.UUID]string{},
		accounts: accounts,
	}
}

func (f *fakeGroupRepo) CreateWithOwner(ctx context.Context, group *db_models.Group) error {
	ensureID(&group.BaseModel)
	f.groups[group.ID] = *group
	f.members[group.ID] = map[uuid.UUID]string{group.OwnerID: db_models.GroupRoleOwner}
	return nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Group, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, nil
	}
	g.Members = nil
	for accountID, role := range f.members[id] {
		m := db_models.GroupMember{GroupID: id, AccountID: accountID, Role: role}
		if f.accounts != nil {
			m.Account = f.accounts.accounts[accountID]
		}
		g.Members = append(g.Members, m)
	}
	sort.Slice(g.Members, func(i, j int) bool { return g.Members[i].Role > g.Members[j].Role })
	return &g, nil
}

func (f *fakeGroupRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Group, error) {
	var out []db_models.Group
	for id := range f.groups {
		if _, ok := f.members[id][accountID]; ok {
			g, _ := f.GetByID(ctx, id)
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) ListGroupIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for id, members := range f.members {
		if _, ok := members[accountID]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) IsMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error) {
	_, ok := f.members[groupID][accountID]
	return ok, nil
}

func (f *fakeGroupRepo) AddMember(ctx context.Context, member *db_models.GroupMember) error {
	if f.members[member.GroupID] == nil {
		f.members[member.GroupID] = map[uuid.UUID]string{}
	}
	f.members[member.GroupID][member.AccountID] = member.Role
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error) {
	if _, ok := f.members[groupID][accountID]; !ok {
		return false, nil
	}
	delete(f.members[groupID], accountID)
	return true, nil
}

// ---------------- favorites, cart, boards ----------------

type fakeFavoriteRepo struct {
	rows   []db_models.Favorite
	places *fakePlaceRepo
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, favorite *db_models.Favorite) error {
	for _, r := range f.rows {
		if r.AccountID == favorite.AccountID && r.ContentID == favorite.ContentID {
			return nil
		}
	}
	ensureID(&favorite.BaseModel)
	f.rows = append(f.rows, *favorite)
	return nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, accountID uuid.UUID, contentID string) (bool, error) {
	for i, r := range f.rows {
		if r.AccountID == accountID && r.ContentID == contentID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoriteRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error) {
	var out []db_models.Favorite
	for _, r := range f.rows {
		if r.AccountID == accountID {
			r.Place = f.places.places[r.ContentID]
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	rows      []db_models.CartItem
	schedules *fakeScheduleRepo
}

func (f *fakeCartRepo) Create(ctx context.Context, item *db_models.CartItem) error {
	ensureID(&item.BaseModel)
	f.rows = append(f.rows, *item)
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	for i, r := range f.rows {
		if r.ID == itemID && r.AccountID == accountID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CartItem, error) {
	var out []db_models.CartItem
	for _, r := range f.rows {
		if r.AccountID == accountID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) ListByIDs(ctx context.Context, accountID uuid.UUID, itemIDs []uuid.UUID) ([]db_models.CartItem, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range itemIDs {
		want[id] = true
	}
	var out []db_models.CartItem
	for _, r := range f.rows {
		if r.AccountID == accountID && want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) MoveToSchedule(ctx context.Context, items []db_models.CartItem, scheduleID uuid.UUID, day int) error {
	toAppend := make([]db_models.ScheduleItem, 0, len(items))
	for _, it := range items {
		toAppend = append(toAppend, db_models.ScheduleItem{ContentID: it.ContentID, Memo: it.Memo})
		_, _ = f.Delete(ctx, it.AccountID, it.ID)
	}
	return f.schedules.AppendItems(ctx, scheduleID, day, toAppend)
}

type fakeBoardRepo struct {
	boards   map[uuid.UUID]db_models.Board
	comments map[uuid.UUID]db_models.Comment
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: map[uuid.UUID]db_models.Board{}, comments: map[uuid.UUID]db_models.Comment{}}
}

func (f *fakeBoardRepo) Create(ctx context.Context, board *db_models.Board) error {
	ensureID(&board.BaseModel)
	f.boards[board.ID] = *board
	return nil
}

func (f *fakeBoardRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBoardRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Board, error) {
	var out []db_models.Board
	for _, b := range f.boards {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBoardRepo) Update(ctx context.Context, board *db_models.Board) error {
	f.boards[board.ID] = *board
	return nil
}

func (f *fakeBoardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.boards, id)
	for cid, c := range f.comments {
		if c.BoardID == id {
			delete(f.comments, cid)
		}
	}
	return nil
}

func (f *fakeBoardRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	b := f.boards[id]
	b.ViewCount++
	f.boards[id] = b
	return nil
}

func (f *fakeBoardRepo) CreateComment(ctx context.Context, comment *db_models.Comment) error {
	ensureID(&comment.BaseModel)
	f.comments[comment.ID] = *comment
	return nil
}

func (f *fakeBoardRepo) GetComment(ctx context.Context, boardID, commentID uuid.UUID) (*db_models.Comment, error) {
	c, ok := f.comments[commentID]
	if !ok || c.BoardID != boardID {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeBoardRepo) ListComments(ctx context.Context, boardID uuid.UUID) ([]db_models.Comment, error) {
	var out []db_models.Comment
	for _, c := range f.comments {
		if c.BoardID == boardID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeBoardRepo) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	delete(f.comments, commentID)
	return nil
}

// ---------------- AI ----------------

type fakeAIClient struct {
	grouping string
	err      error
	calls    int
	vector   []float32
}

func (f *fakeAIClient) GenerateDayGroupingJSON(ctx context.Context, start utils.PlaceSummary, places []utils.PlaceSummary, dayCount int) (string, error) {
	f.calls++
	return f.grouping, f.err
}

func (f *fakeAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	v := f.vector
	if v == nil {
		v = []float32{0.1, 0.2, 0.3}
	}
	return pgvector.NewVector(v), nil
}

func (f *fakeAIClient) Provider() string { return "fake" }

func (f *fakeAIClient) Close() error { return nil }
