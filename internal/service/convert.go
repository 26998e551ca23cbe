package service

import (
	"github.com/w4d32001/admin-eapiis/internal/dto"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/pkg/media"
)

const dateLayout = "2006-01-02"

// Gallery thumbnails are cropped to a fixed 4:3 box.
var thumbnailParams = []media.Param{{Key: "c", Value: "fill"}, {Key: "w", Value: "400"}, {Key: "h", Value: "300"}}

func toCategoryResponse(c *model.TeacherCategory) dto.TeacherCategoryResponse {
	return dto.TeacherCategoryResponse{
		ID:        c.CategoryID,
		Name:      c.Name,
		UpdatedAt: dto.FormatTime(c.UpdatedAt),
		UpdatedBy: model.UpdaterName(c.Updater),
	}
}

func toCategoryResponses(categories []model.TeacherCategory) []dto.TeacherCategoryResponse {
	result := make([]dto.TeacherCategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, toCategoryResponse(&categories[i]))
	}
	return result
}

func toTeacherResponse(t *model.Teacher) dto.TeacherResponse {
	resp := dto.TeacherResponse{
		ID:             t.TeacherID,
		Name:           t.Name,
		Email:          t.Email,
		Phone:          t.Phone,
		AcademicDegree: t.AcademicDegree,
		Image:          t.Image.URL,
		UpdatedAt:      dto.FormatTime(t.UpdatedAt),
		UpdatedBy:      model.UpdaterName(t.Updater),
	}
	if t.Category != nil {
		resp.TeacherType = &dto.CategoryRef{ID: t.Category.CategoryID, Name: t.Category.Name}
	}
	return resp
}

func toTeacherResponses(teachers []model.Teacher) []dto.TeacherResponse {
	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, toTeacherResponse(&teachers[i]))
	}
	return result
}

func toNewsResponse(n *model.NewsArticle) dto.NewsResponse {
	return dto.NewsResponse{
		ID:        n.NewsID,
		Title:     n.Title,
		Date:      n.ScheduledDate.Format(dateLayout),
		Location:  n.Location,
		Content:   n.Content,
		Image:     optionalString(n.Image.URL),
		PublicID:  optionalString(n.Image.StorageID),
		Status:    n.Published,
		CreatedBy: n.CreatedBy,
		UpdatedBy: model.UpdaterName(n.Updater),
		CreatedAt: dto.FormatTime(n.CreatedAt),
		UpdatedAt: dto.FormatTime(n.UpdatedAt),
	}
}

func toNewsResponses(articles []model.NewsArticle) []dto.NewsResponse {
	result := make([]dto.NewsResponse, 0, len(articles))
	for i := range articles {
		result = append(result, toNewsResponse(&articles[i]))
	}
	return result
}

func toGalleryResponse(g *model.GalleryItem, store media.Store) dto.GalleryResponse {
	return dto.GalleryResponse{
		ID:           g.GalleryItemID,
		Type:         g.Category,
		Image:        g.Image.URL,
		ThumbnailURL: store.DerivedURL(g.Image.StorageID, thumbnailParams...),
		CreatedBy:    g.CreatedBy,
		UpdatedBy:    model.UpdaterName(g.Updater),
		CreatedAt:    dto.FormatTime(g.CreatedAt),
		UpdatedAt:    dto.FormatTime(g.UpdatedAt),
	}
}

func toGalleryResponses(items []model.GalleryItem, store media.Store) []dto.GalleryResponse {
	result := make([]dto.GalleryResponse, 0, len(items))
	for i := range items {
		result = append(result, toGalleryResponse(&items[i], store))
	}
	return result
}

func toSemesterResponse(s *model.Semester) dto.SemesterResponse {
	return dto.SemesterResponse{
		ID:          s.SemesterID,
		Number:      s.Number,
		Name:        s.Name,
		Description: s.Description,
		Image:       s.Image.URL,
		IsActive:    s.IsActive,
		UpdatedAt:   dto.FormatTime(s.UpdatedAt),
		UpdatedBy:   model.UpdaterName(s.Updater),
	}
}

func toSemesterResponses(semesters []model.Semester) []dto.SemesterResponse {
	result := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		result = append(result, toSemesterResponse(&semesters[i]))
	}
	return result
}

func toSettingResponse(s *model.SiteSetting, store media.Store) dto.SettingResponse {
	return dto.SettingResponse{
		ID:                 s.SettingID,
		Name:               s.Name,
		Image:              s.Image.URL,
		DocumentURL:        s.Document.URL,
		DocumentPreviewURL: store.PreviewURL(s.Document.StorageID),
		DocumentBytes:      s.Document.ByteSize,
		DocumentPages:      s.Document.PageCount,
		UpdatedAt:          dto.FormatTime(s.UpdatedAt),
		UpdatedBy:          model.UpdaterName(s.Updater),
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: dto.FormatTime(u.CreatedAt),
	}
}
