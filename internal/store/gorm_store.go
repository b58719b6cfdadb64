package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ourstory/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&MemoryModel{}, &GalleryModel{}, &QuoteModel{},
		&FoodModel{}, &SongModel{}, &MovieModel{}, &MemoryBookModel{},
		&NavigationModel{}, &PageContentModel{}, &CaptionModel{},
		&AdminModel{}, &VisitorModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func listModels[M any](db *gorm.DB, order string, limit int, conds ...any) ([]M, error) {
	var models []M
	tx := db.Order(order)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if len(conds) > 0 {
		tx = tx.Where(conds[0], conds[1:]...)
	}
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

func getModel[M any](db *gorm.DB, id int64) (M, bool, error) {
	var model M
	if err := db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model, false, nil
		}
		return model, false, err
	}
	return model, true, nil
}

func deleteModel[M any](db *gorm.DB, id int64) (bool, error) {
	var model M
	tx := db.Delete(&model, "id = ?", id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func mapModels[M, D any](models []M, conv func(M) D) []D {
	out := make([]D, 0, len(models))
	for _, m := range models {
		out = append(out, conv(m))
	}
	return out
}

// memories

func (s *GormStore) ListMemories() ([]domain.Memory, error) {
	models, err := listModels[MemoryModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, memoryFromModel), nil
}

func (s *GormStore) RecentMemories(limit int) ([]domain.Memory, error) {
	models, err := listModels[MemoryModel](s.db, "date DESC, id DESC", limit)
	if err != nil {
		return nil, err
	}
	return mapModels(models, memoryFromModel), nil
}

func (s *GormStore) GetMemory(id int64) (domain.Memory, bool, error) {
	model, ok, err := getModel[MemoryModel](s.db, id)
	if err != nil || !ok {
		return domain.Memory{}, ok, err
	}
	return memoryFromModel(model), true, nil
}

func (s *GormStore) CreateMemory(m domain.Memory) (domain.Memory, error) {
	model := memoryToModel(m)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Memory{}, err
	}
	return memoryFromModel(model), nil
}

func (s *GormStore) UpdateMemory(m domain.Memory) (domain.Memory, bool, error) {
	model, ok, err := getModel[MemoryModel](s.db, m.ID)
	if err != nil || !ok {
		return domain.Memory{}, ok, err
	}
	model.Title = m.Title
	model.Content = m.Content
	model.Date = m.Date
	model.ImageURL = m.ImageURL
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.Memory{}, false, err
	}
	return memoryFromModel(model), true, nil
}

// DeleteMemory removes the memory and its generated captions.
func (s *GormStore) DeleteMemory(id int64) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CaptionModel{}, "memory_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&MemoryModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// gallery

func (s *GormStore) ListGallery() ([]domain.GalleryItem, error) {
	models, err := listModels[GalleryModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, galleryFromModel), nil
}

func (s *GormStore) FeaturedGallery(limit int) ([]domain.GalleryItem, error) {
	models, err := listModels[GalleryModel](s.db, "created_at DESC, id DESC", limit, "is_featured = ?", true)
	if err != nil {
		return nil, err
	}
	return mapModels(models, galleryFromModel), nil
}

func (s *GormStore) GetGalleryItem(id int64) (domain.GalleryItem, bool, error) {
	model, ok, err := getModel[GalleryModel](s.db, id)
	if err != nil || !ok {
		return domain.GalleryItem{}, ok, err
	}
	return galleryFromModel(model), true, nil
}

func (s *GormStore) CreateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, error) {
	model := galleryToModel(g)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.GalleryItem{}, err
	}
	return galleryFromModel(model), nil
}

func (s *GormStore) UpdateGalleryItem(g domain.GalleryItem) (domain.GalleryItem, bool, error) {
	model, ok, err := getModel[GalleryModel](s.db, g.ID)
	if err != nil || !ok {
		return domain.GalleryItem{}, ok, err
	}
	model.ImageURL = g.ImageURL
	model.Caption = g.Caption
	model.IsFeatured = g.IsFeatured
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.GalleryItem{}, false, err
	}
	return galleryFromModel(model), true, nil
}

// DeleteGalleryItem removes the image and its generated captions.
func (s *GormStore) DeleteGalleryItem(id int64) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CaptionModel{}, "image_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&GalleryModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// quotes

func (s *GormStore) ListQuotes() ([]domain.Quote, error) {
	models, err := listModels[QuoteModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, quoteFromModel), nil
}

func (s *GormStore) FeaturedQuotes(limit int) ([]domain.Quote, error) {
	models, err := listModels[QuoteModel](s.db, "created_at DESC, id DESC", limit, "is_featured = ?", true)
	if err != nil {
		return nil, err
	}
	return mapModels(models, quoteFromModel), nil
}

func (s *GormStore) GetQuote(id int64) (domain.Quote, bool, error) {
	model, ok, err := getModel[QuoteModel](s.db, id)
	if err != nil || !ok {
		return domain.Quote{}, ok, err
	}
	return quoteFromModel(model), true, nil
}

func (s *GormStore) CreateQuote(q domain.Quote) (domain.Quote, error) {
	model := quoteToModel(q)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Quote{}, err
	}
	return quoteFromModel(model), nil
}

func (s *GormStore) UpdateQuote(q domain.Quote) (domain.Quote, bool, error) {
	model, ok, err := getModel[QuoteModel](s.db, q.ID)
	if err != nil || !ok {
		return domain.Quote{}, ok, err
	}
	model.Text = q.Text
	model.Author = q.Author
	model.IsFeatured = q.IsFeatured
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.Quote{}, false, err
	}
	return quoteFromModel(model), true, nil
}

func (s *GormStore) DeleteQuote(id int64) (bool, error) {
	return deleteModel[QuoteModel](s.db, id)
}

// favorite foods

func (s *GormStore) ListFoods() ([]domain.Food, error) {
	models, err := listModels[FoodModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, foodFromModel), nil
}

func (s *GormStore) GetFood(id int64) (domain.Food, bool, error) {
	model, ok, err := getModel[FoodModel](s.db, id)
	if err != nil || !ok {
		return domain.Food{}, ok, err
	}
	return foodFromModel(model), true, nil
}

func (s *GormStore) CreateFood(f domain.Food) (domain.Food, error) {
	model := foodToModel(f)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Food{}, err
	}
	return foodFromModel(model), nil
}

func (s *GormStore) UpdateFood(f domain.Food) (domain.Food, bool, error) {
	model, ok, err := getModel[FoodModel](s.db, f.ID)
	if err != nil || !ok {
		return domain.Food{}, ok, err
	}
	model.Name = f.Name
	model.Description = f.Description
	model.ImageURL = f.ImageURL
	model.IsFeatured = f.IsFeatured
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.Food{}, false, err
	}
	return foodFromModel(model), true, nil
}

func (s *GormStore) DeleteFood(id int64) (bool, error) {
	return deleteModel[FoodModel](s.db, id)
}

// favorite songs

func (s *GormStore) ListSongs() ([]domain.Song, error) {
	models, err := listModels[SongModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, songFromModel), nil
}

func (s *GormStore) GetSong(id int64) (domain.Song, bool, error) {
	model, ok, err := getModel[SongModel](s.db, id)
	if err != nil || !ok {
		return domain.Song{}, ok, err
	}
	return songFromModel(model), true, nil
}

func (s *GormStore) CreateSong(sg domain.Song) (domain.Song, error) {
	model := songToModel(sg)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Song{}, err
	}
	return songFromModel(model), nil
}

func (s *GormStore) UpdateSong(sg domain.Song) (domain.Song, bool, error) {
	model, ok, err := getModel[SongModel](s.db, sg.ID)
	if err != nil || !ok {
		return domain.Song{}, ok, err
	}
	model.Title = sg.Title
	model.Artist = sg.Artist
	model.YoutubeURL = sg.YoutubeURL
	model.Description = sg.Description
	model.IsFeatured = sg.IsFeatured
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.Song{}, false, err
	}
	return songFromModel(model), true, nil
}

func (s *GormStore) DeleteSong(id int64) (bool, error) {
	return deleteModel[SongModel](s.db, id)
}

// favorite movies

func (s *GormStore) ListMovies() ([]domain.Movie, error) {
	models, err := listModels[MovieModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, movieFromModel), nil
}

func (s *GormStore) GetMovie(id int64) (domain.Movie, bool, error) {
	model, ok, err := getModel[MovieModel](s.db, id)
	if err != nil || !ok {
		return domain.Movie{}, ok, err
	}
	return movieFromModel(model), true, nil
}

func (s *GormStore) CreateMovie(mv domain.Movie) (domain.Movie, error) {
	model := movieToModel(mv)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Movie{}, err
	}
	return movieFromModel(model), nil
}

func (s *GormStore) UpdateMovie(mv domain.Movie) (domain.Movie, bool, error) {
	model, ok, err := getModel[MovieModel](s.db, mv.ID)
	if err != nil || !ok {
		return domain.Movie{}, ok, err
	}
	model.Title = mv.Title
	model.Director = mv.Director
	model.Description = mv.Description
	model.ImageURL = mv.ImageURL
	model.IsFeatured = mv.IsFeatured
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.Movie{}, false, err
	}
	return movieFromModel(model), true, nil
}

func (s *GormStore) DeleteMovie(id int64) (bool, error) {
	return deleteModel[MovieModel](s.db, id)
}

// memory books

func (s *GormStore) ListMemoryBooks() ([]domain.MemoryBook, error) {
	models, err := listModels[MemoryBookModel](s.db, "created_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, memoryBookFromModel), nil
}

func (s *GormStore) GetMemoryBook(id int64) (domain.MemoryBook, bool, error) {
	model, ok, err := getModel[MemoryBookModel](s.db, id)
	if err != nil || !ok {
		return domain.MemoryBook{}, ok, err
	}
	return memoryBookFromModel(model), true, nil
}

func (s *GormStore) CreateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, error) {
	model := memoryBookToModel(b)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.MemoryBook{}, err
	}
	return memoryBookFromModel(model), nil
}

func (s *GormStore) UpdateMemoryBook(b domain.MemoryBook) (domain.MemoryBook, bool, error) {
	model, ok, err := getModel[MemoryBookModel](s.db, b.ID)
	if err != nil || !ok {
		return domain.MemoryBook{}, ok, err
	}
	model.Title = b.Title
	model.Content = b.Content
	model.Date = b.Date
	model.ImageURL = b.ImageURL
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.MemoryBook{}, false, err
	}
	return memoryBookFromModel(model), true, nil
}

func (s *GormStore) DeleteMemoryBook(id int64) (bool, error) {
	return deleteModel[MemoryBookModel](s.db, id)
}

// navigation

func (s *GormStore) ListNavigation() ([]domain.NavigationItem, error) {
	models, err := listModels[NavigationModel](s.db, "display_order ASC, id ASC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, navigationFromModel), nil
}

func (s *GormStore) GetNavigationItem(id int64) (domain.NavigationItem, bool, error) {
	model, ok, err := getModel[NavigationModel](s.db, id)
	if err != nil || !ok {
		return domain.NavigationItem{}, ok, err
	}
	return navigationFromModel(model), true, nil
}

func (s *GormStore) CreateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, error) {
	model := navigationToModel(n)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.NavigationItem{}, err
	}
	return navigationFromModel(model), nil
}

func (s *GormStore) UpdateNavigationItem(n domain.NavigationItem) (domain.NavigationItem, bool, error) {
	model, ok, err := getModel[NavigationModel](s.db, n.ID)
	if err != nil || !ok {
		return domain.NavigationItem{}, ok, err
	}
	model.Title = n.Title
	model.Path = n.Path
	model.Icon = n.Icon
	model.Order = n.Order
	model.IsVisible = n.IsVisible
	model.UpdatedAt = time.Now().UTC()
	if err := s.db.Save(&model).Error; err != nil {
		return domain.NavigationItem{}, false, err
	}
	return navigationFromModel(model), true, nil
}

func (s *GormStore) DeleteNavigationItem(id int64) (bool, error) {
	return deleteModel[NavigationModel](s.db, id)
}

// page content

func (s *GormStore) ListPageContent() ([]domain.PageContent, error) {
	models, err := listModels[PageContentModel](s.db, "updated_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, pageContentFromModel), nil
}

func (s *GormStore) PageContentByName(pageName string) ([]domain.PageContent, error) {
	models, err := listModels[PageContentModel](s.db, "updated_at DESC, id DESC", 0, "page_name = ?", pageName)
	if err != nil {
		return nil, err
	}
	return mapModels(models, pageContentFromModel), nil
}

// UpsertPageContent inserts a row for a new page name or replaces the
// fields of the existing row.
func (s *GormStore) UpsertPageContent(pc domain.PageContent) (domain.PageContent, error) {
	var model PageContentModel
	err := s.db.First(&model, "page_name = ?", pc.PageName).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model = pageContentToModel(pc)
		model.ID = 0
		model.CreatedAt = time.Now().UTC()
		model.UpdatedAt = model.CreatedAt
		if err := s.db.Create(&model).Error; err != nil {
			return domain.PageContent{}, err
		}
	case err != nil:
		return domain.PageContent{}, err
	default:
		model.Title = pc.Title
		model.Subtitle = pc.Subtitle
		model.Content = pc.Content
		model.ImageURL = pc.ImageURL
		model.HeroImageURL = pc.HeroImageURL
		model.MetaDescription = pc.MetaDescription
		model.IsPublished = pc.IsPublished
		model.UpdatedAt = time.Now().UTC()
		if err := s.db.Save(&model).Error; err != nil {
			return domain.PageContent{}, err
		}
	}
	return pageContentFromModel(model), nil
}

// captions

func (s *GormStore) CaptionsForImage(imageID int64) ([]domain.Caption, error) {
	models, err := listModels[CaptionModel](s.db, "generated_at DESC, id DESC", 0, "image_id = ?", imageID)
	if err != nil {
		return nil, err
	}
	return mapModels(models, captionFromModel), nil
}

func (s *GormStore) CreateCaption(c domain.Caption) (domain.Caption, error) {
	model := captionToModel(c)
	model.ID = 0
	if model.GeneratedAt.IsZero() {
		model.GeneratedAt = time.Now().UTC()
	}
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Caption{}, err
	}
	return captionFromModel(model), nil
}

// admin account

func (s *GormStore) CountAdmins() (int, error) {
	var count int64
	if err := s.db.Model(&AdminModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *GormStore) GetAdminByEmail(email string) (domain.Admin, bool, error) {
	var model AdminModel
	if err := s.db.First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Admin{}, false, nil
		}
		return domain.Admin{}, false, err
	}
	return adminFromModel(model), true, nil
}

func (s *GormStore) CreateAdmin(a domain.Admin) (domain.Admin, error) {
	model := adminToModel(a)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	model.UpdatedAt = model.CreatedAt
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Admin{}, err
	}
	return adminFromModel(model), nil
}

func (s *GormStore) TouchAdminLastLogin(id int64, at time.Time) error {
	return s.db.Model(&AdminModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_login": at, "updated_at": at}).Error
}

// visitors

func (s *GormStore) ListVisitors() ([]domain.Visitor, error) {
	models, err := listModels[VisitorModel](s.db, "visited_at DESC, id DESC", 0)
	if err != nil {
		return nil, err
	}
	return mapModels(models, visitorFromModel), nil
}

func (s *GormStore) CreateVisitor(v domain.Visitor) (domain.Visitor, error) {
	model, err := visitorToModel(v)
	if err != nil {
		return domain.Visitor{}, err
	}
	model.ID = 0
	if model.VisitedAt.IsZero() {
		model.VisitedAt = time.Now().UTC()
	}
	if err := s.db.Create(&model).Error; err != nil {
		return domain.Visitor{}, err
	}
	return visitorFromModel(model), nil
}
