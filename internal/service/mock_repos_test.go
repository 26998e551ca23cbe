package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/internal/repository"
)

// ── shared helpers ──

var mockClock = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

// tick returns strictly increasing timestamps so newest-first ordering is deterministic.
func tick() time.Time {
	mockClock = mockClock.Add(time.Second)
	return mockClock
}

func contains(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func pageOf[T any](items []T, f repository.ListFilter) []T {
	if f.PageSize <= 0 {
		return items
	}
	start := 0
	if f.Page > 1 {
		start = (f.Page - 1) * f.PageSize
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + f.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*model.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = tick()
	c := *user
	m.users[user.UserID] = &c
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, f repository.ListFilter) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if contains(f.Search, u.Name, u.Email) {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	for id, u := range m.users {
		if id != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── Mock TeacherCategoryRepository ──

type mockCategoryRepo struct {
	categories map[string]*model.TeacherCategory
	createErr  error
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[string]*model.TeacherCategory)}
}

func (m *mockCategoryRepo) Create(_ context.Context, category *model.TeacherCategory) error {
	if m.createErr != nil {
		return m.createErr
	}
	if category.CategoryID == "" {
		category.CategoryID = uuid.NewString()
	}
	category.CreatedAt = tick()
	category.UpdatedAt = category.CreatedAt
	c := *category
	m.categories[category.CategoryID] = &c
	return nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*model.TeacherCategory, error) {
	if c, ok := m.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCategoryRepo) List(_ context.Context, f repository.ListFilter) ([]model.TeacherCategory, int64, error) {
	var result []model.TeacherCategory
	for _, c := range m.categories {
		if contains(f.Search, c.Name) {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockCategoryRepo) ListAll(_ context.Context) ([]model.TeacherCategory, error) {
	var result []model.TeacherCategory
	for _, c := range m.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, category *model.TeacherCategory) error {
	category.UpdatedAt = tick()
	c := *category
	m.categories[category.CategoryID] = &c
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	for id, c := range m.categories {
		if id != excludeID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers   map[string]*model.Teacher
	categories *mockCategoryRepo
	createErr  error
	updateErr  error
}

func newMockTeacherRepo(categories *mockCategoryRepo) *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher), categories: categories}
}

func (m *mockTeacherRepo) withCategory(t model.Teacher) *model.Teacher {
	t.Category = nil
	if t.CategoryID != nil {
		if c, ok := m.categories.categories[*t.CategoryID]; ok {
			cp := *c
			t.Category = &cp
		}
	}
	return &t
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if m.createErr != nil {
		return m.createErr
	}
	if teacher.TeacherID == "" {
		teacher.TeacherID = uuid.NewString()
	}
	teacher.CreatedAt = tick()
	teacher.UpdatedAt = teacher.CreatedAt
	c := *teacher
	m.teachers[teacher.TeacherID] = &c
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return m.withCategory(*t), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context, f repository.ListFilter) ([]model.Teacher, int64, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		if !contains(f.Search, t.Name, t.Email, t.Phone) {
			continue
		}
		if f.CategoryID != "" && (t.CategoryID == nil || *t.CategoryID != f.CategoryID) {
			continue
		}
		result = append(result, *m.withCategory(*t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	teacher.UpdatedAt = tick()
	c := *teacher
	m.teachers[teacher.TeacherID] = &c
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	for id, t := range m.teachers {
		if id != excludeID && strings.EqualFold(t.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTeacherRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var n int64
	for _, t := range m.teachers {
		if t.CategoryID != nil && *t.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *mockTeacherRepo) ClearCategory(_ context.Context, categoryID, updatedBy string) error {
	for _, t := range m.teachers {
		if t.CategoryID != nil && *t.CategoryID == categoryID {
			t.CategoryID = nil
			t.StampUpdated(updatedBy)
		}
	}
	return nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.teachers)), nil
}

// ── Mock NewsRepository ──

type mockNewsRepo struct {
	articles  map[string]*model.NewsArticle
	createErr error
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{articles: make(map[string]*model.NewsArticle)}
}

func (m *mockNewsRepo) Create(_ context.Context, article *model.NewsArticle) error {
	if m.createErr != nil {
		return m.createErr
	}
	if article.NewsID == "" {
		article.NewsID = uuid.NewString()
	}
	article.CreatedAt = tick()
	article.UpdatedAt = article.CreatedAt
	c := *article
	m.articles[article.NewsID] = &c
	return nil
}

func (m *mockNewsRepo) GetByID(_ context.Context, id string) (*model.NewsArticle, error) {
	if a, ok := m.articles[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNewsRepo) List(_ context.Context, f repository.ListFilter) ([]model.NewsArticle, int64, error) {
	var result []model.NewsArticle
	for _, a := range m.articles {
		if !contains(f.Search, a.Title, a.Content, a.Location) {
			continue
		}
		if f.Published != nil && a.Published != *f.Published {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockNewsRepo) Update(_ context.Context, article *model.NewsArticle) error {
	article.UpdatedAt = tick()
	c := *article
	m.articles[article.NewsID] = &c
	return nil
}

func (m *mockNewsRepo) SetPublished(_ context.Context, id string, published bool, updatedBy string) error {
	a, ok := m.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Published = published
	a.StampUpdated(updatedBy)
	return nil
}

func (m *mockNewsRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.articles, id)
	return nil
}

func (m *mockNewsRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.articles)), nil
}

// ── Mock GalleryRepository ──

type mockGalleryRepo struct {
	items map[string]*model.GalleryItem
}

func newMockGalleryRepo() *mockGalleryRepo {
	return &mockGalleryRepo{items: make(map[string]*model.GalleryItem)}
}

func (m *mockGalleryRepo) Create(_ context.Context, item *model.GalleryItem) error {
	if item.GalleryItemID == "" {
		item.GalleryItemID = uuid.NewString()
	}
	item.CreatedAt = tick()
	item.UpdatedAt = item.CreatedAt
	c := *item
	m.items[item.GalleryItemID] = &c
	return nil
}

func (m *mockGalleryRepo) GetByID(_ context.Context, id string) (*model.GalleryItem, error) {
	if g, ok := m.items[id]; ok {
		c := *g
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGalleryRepo) List(_ context.Context, f repository.ListFilter) ([]model.GalleryItem, int64, error) {
	var result []model.GalleryItem
	for _, g := range m.items {
		if f.Category == "" || g.Category == f.Category {
			result = append(result, *g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockGalleryRepo) Update(_ context.Context, item *model.GalleryItem) error {
	item.UpdatedAt = tick()
	c := *item
	m.items[item.GalleryItemID] = &c
	return nil
}

func (m *mockGalleryRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.items, id)
	return nil
}

func (m *mockGalleryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

// ── Mock SemesterRepository ──

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
	createErr error
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if m.createErr != nil {
		return m.createErr
	}
	if semester.SemesterID == "" {
		semester.SemesterID = uuid.NewString()
	}
	semester.CreatedAt = tick()
	semester.UpdatedAt = semester.CreatedAt
	c := *semester
	m.semesters[semester.SemesterID] = &c
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) List(_ context.Context, f repository.ListFilter) ([]model.Semester, int64, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if !f.ActiveOnly || s.IsActive {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return pageOf(result, f), int64(len(result)), nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	semester.UpdatedAt = tick()
	c := *semester
	m.semesters[semester.SemesterID] = &c
	return nil
}

func (m *mockSemesterRepo) SetActive(_ context.Context, id string, active bool, updatedBy string) error {
	s, ok := m.semesters[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.IsActive = active
	s.StampUpdated(updatedBy)
	return nil
}

func (m *mockSemesterRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.semesters, id)
	return nil
}

func (m *mockSemesterRepo) NumberTaken(_ context.Context, number int, excludeID string) (bool, error) {
	for id, s := range m.semesters {
		if id != excludeID && s.Number == number {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSemesterRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.semesters)), nil
}

// ── Mock SiteSettingRepository ──

type mockSiteSettingRepo struct {
	settings map[string]*model.SiteSetting
}

func newMockSiteSettingRepo() *mockSiteSettingRepo {
	return &mockSiteSettingRepo{settings: make(map[string]*model.SiteSetting)}
}

func (m *mockSiteSettingRepo) GetByName(_ context.Context, name string) (*model.SiteSetting, error) {
	if s, ok := m.settings[name]; ok {
		c := *s
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSiteSettingRepo) List(_ context.Context) ([]model.SiteSetting, error) {
	var result []model.SiteSetting
	for _, s := range m.settings {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSiteSettingRepo) Upsert(_ context.Context, setting *model.SiteSetting) error {
	if existing, ok := m.settings[setting.Name]; ok {
		setting.SettingID = existing.SettingID
		setting.CreatedAt = existing.CreatedAt
		setting.CreatedBy = existing.CreatedBy
	} else {
		setting.SettingID = uuid.NewString()
		setting.CreatedAt = tick()
	}
	setting.UpdatedAt = tick()
	c := *setting
	m.settings[setting.Name] = &c
	return nil
}

// ── Mock AuditRepository ──

// mockAuditRepo resolves references against the news and site setting mocks,
// which is enough to observe author bookkeeping.
type mockAuditRepo struct {
	news     *mockNewsRepo
	settings *mockSiteSettingRepo
}

func (m *mockAuditRepo) audited() []*model.BaseModel {
	var rows []*model.BaseModel
	for _, a := range m.news.articles {
		rows = append(rows, &a.BaseModel)
	}
	for _, st := range m.settings.settings {
		rows = append(rows, &st.BaseModel)
	}
	return rows
}

func (m *mockAuditRepo) CountReferences(_ context.Context, userID string) (repository.UserReferences, error) {
	var refs repository.UserReferences
	for _, b := range m.audited() {
		if b.CreatedBy != nil && *b.CreatedBy == userID {
			refs.Created++
		}
		if b.UpdatedBy != nil && *b.UpdatedBy == userID && (b.CreatedBy == nil || *b.CreatedBy != userID) {
			refs.Updated++
		}
	}
	return refs, nil
}

func (m *mockAuditRepo) ClearReferences(_ context.Context, userID string) error {
	for _, b := range m.audited() {
		if b.CreatedBy != nil && *b.CreatedBy == userID {
			b.CreatedBy = nil
		}
		if b.UpdatedBy != nil && *b.UpdatedBy == userID {
			b.UpdatedBy = nil
		}
	}
	return nil
}

// ── aggregate ──

type mockRepos struct {
	user     *mockUserRepo
	category *mockCategoryRepo
	teacher  *mockTeacherRepo
	news     *mockNewsRepo
	gallery  *mockGalleryRepo
	semester *mockSemesterRepo
	setting  *mockSiteSettingRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		user:     newMockUserRepo(),
		category: newMockCategoryRepo(),
		news:     newMockNewsRepo(),
		gallery:  newMockGalleryRepo(),
		semester: newMockSemesterRepo(),
		setting:  newMockSiteSettingRepo(),
	}
	m.teacher = newMockTeacherRepo(m.category)

	repo := &repository.Repository{
		User:            m.user,
		TeacherCategory: m.category,
		Teacher:         m.teacher,
		News:            m.news,
		Gallery:         m.gallery,
		Semester:        m.semester,
		SiteSetting:     m.setting,
		Audit:           &mockAuditRepo{news: m.news, settings: m.setting},
	}
	return repo, m
}

func (m *mockRepos) seedCategory(name string) string {
	c := &model.TeacherCategory{Name: name}
	_ = m.category.Create(context.Background(), c)
	return c.CategoryID
}

func (m *mockRepos) seedUser(name, role string) string {
	u := &model.User{Name: name, Email: fmt.Sprintf("%s@unamba.edu.pe", strings.ToLower(name)), Role: role}
	_ = m.user.Create(context.Background(), u)
	return u.UserID
}
