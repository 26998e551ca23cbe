package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
)

func seedNews(m *mockRepos, title string, published bool) {
	_ = m.news.Create(context.Background(), &model.NewsArticle{
		Title:         title,
		Content:       "contenido",
		Location:      "Campus",
		ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Published:     published,
	})
}

func seedSemester(m *mockRepos, number int, active bool) {
	name, _ := SemesterName(number, false)
	_ = m.semester.Create(context.Background(), &model.Semester{Number: number, Name: name, IsActive: active})
}

func TestPublicService_NewsOnlyPublished(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewPublicService(testConfig(), repo, newFakeStore(), nopLogger)

	seedNews(mocks, "Borrador", false)
	seedNews(mocks, "Convocatoria", true)
	seedNews(mocks, "Resultados", true)

	page, err := svc.News(context.Background(), &dto.PublicQuery{})
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 published articles, got %d", page.Total)
	}
	if page.Items[0].Title != "Resultados" {
		t.Errorf("newest first expected, got %s", page.Items[0].Title)
	}
	if page.Items[0].Date != "2025-04-01" || page.Items[0].Image != nil {
		t.Errorf("unexpected projection %+v", page.Items[0])
	}
}

func TestPublicService_Semesters(t *testing.T) {
	for _, activeOnly := range []bool{false, true} {
		t.Run(fmt.Sprintf("active_only=%v", activeOnly), func(t *testing.T) {
			repo, mocks := newMockRepository()
			cfg := testConfig()
			cfg.Public.SemestersActiveOnly = activeOnly
			svc := NewPublicService(cfg, repo, newFakeStore(), nopLogger)

			seedSemester(mocks, 1, true)
			seedSemester(mocks, 2, false)

			page, err := svc.Semesters(context.Background(), &dto.PublicQuery{})
			if err != nil {
				t.Fatalf("semesters: %v", err)
			}
			want := int64(2)
			if activeOnly {
				want = 1
			}
			if page.Total != want {
				t.Errorf("expected %d semesters, got %d", want, page.Total)
			}
		})
	}
}

func TestDashboardService_Summary(t *testing.T) {
	repo, mocks := newMockRepository()
	svc := NewDashboardService(testConfig(), repo, newFakeStore(), nopLogger)

	for i := 0; i < 7; i++ {
		seedNews(mocks, fmt.Sprintf("Noticia %d", i), i%2 == 0)
	}
	seedSemester(mocks, 1, true)
	cat := mocks.seedCategory("Nombrado")
	for i := 0; i < 10; i++ {
		seedTeacherIn(mocks, cat)
	}

	summary, err := svc.Summary(context.Background(), &dto.DashboardQuery{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.News) != 5 || summary.Counts.News != 7 {
		t.Errorf("expected 5 latest of 7 news, got %d/%d", len(summary.News), summary.Counts.News)
	}
	if summary.Teachers.Total != 10 || len(summary.Teachers.Items) != 8 {
		t.Errorf("expected first page of 8 teachers, got %d of %d", len(summary.Teachers.Items), summary.Teachers.Total)
	}
	if len(summary.TeacherTypes) != 1 || summary.Counts.Semesters != 1 || summary.Counts.Galleries != 0 {
		t.Errorf("unexpected summary %+v", summary.Counts)
	}
}
