package store

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"ourstory/pkg/domain"
)

// GORM models used for persistence. Table names follow the site's
// original schema.

type MemoryModel struct {
	ID        int64     `gorm:"primaryKey"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	Date      time.Time `gorm:"not null;index"`
	ImageURL  string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (MemoryModel) TableName() string { return "memories" }

type GalleryModel struct {
	ID         int64  `gorm:"primaryKey"`
	ImageURL   string `gorm:"not null"`
	Caption    string
	IsFeatured bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (GalleryModel) TableName() string { return "gallery" }

type QuoteModel struct {
	ID         int64  `gorm:"primaryKey"`
	Text       string `gorm:"not null"`
	Author     string
	IsFeatured bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (QuoteModel) TableName() string { return "quotes" }

type FoodModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	ImageURL    string
	IsFeatured  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (FoodModel) TableName() string { return "favorite_foods" }

type SongModel struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Artist      string
	YoutubeURL  string
	Description string
	IsFeatured  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (SongModel) TableName() string { return "favorite_songs" }

type MovieModel struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Director    string
	Description string
	ImageURL    string
	IsFeatured  bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (MovieModel) TableName() string { return "favorite_movies" }

type MemoryBookModel struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Date      *time.Time
	ImageURL  string
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (MemoryBookModel) TableName() string { return "memory_books" }

type NavigationModel struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Path      string `gorm:"not null"`
	Icon      string
	Order     int       `gorm:"column:display_order;not null;default:0"`
	IsVisible bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (NavigationModel) TableName() string { return "navigation" }

type PageContentModel struct {
	ID              int64  `gorm:"primaryKey"`
	PageName        string `gorm:"uniqueIndex;not null"`
	Title           string
	Subtitle        string
	Content         string
	ImageURL        string
	HeroImageURL    string
	MetaDescription string
	IsPublished     bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (PageContentModel) TableName() string { return "page_content" }

type CaptionModel struct {
	ID          int64  `gorm:"primaryKey"`
	ImageID     *int64 `gorm:"index"`
	MemoryID    *int64 `gorm:"index"`
	Caption     string `gorm:"not null"`
	ModelUsed   string
	GeneratedAt time.Time `gorm:"not null"`
}

func (CaptionModel) TableName() string { return "ai_captions" }

type AdminModel struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (AdminModel) TableName() string { return "admin_users" }

type VisitorModel struct {
	ID        int64 `gorm:"primaryKey"`
	IP        string
	UserAgent string
	Meta      datatypes.JSON `gorm:"type:jsonb"`
	Verified  bool           `gorm:"not null;default:false"`
	VisitedAt time.Time      `gorm:"not null;index"`
}

func (VisitorModel) TableName() string { return "visitors" }

func memoryToModel(m domain.Memory) MemoryModel {
	return MemoryModel{
		ID: m.ID, Title: m.Title, Content: m.Content, Date: m.Date,
		ImageURL: m.ImageURL, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func memoryFromModel(m MemoryModel) domain.Memory {
	return domain.Memory{
		ID: m.ID, Title: m.Title, Content: m.Content, Date: m.Date,
		ImageURL: m.ImageURL, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func galleryToModel(g domain.GalleryItem) GalleryModel {
	return GalleryModel{
		ID: g.ID, ImageURL: g.ImageURL, Caption: g.Caption,
		IsFeatured: g.IsFeatured, CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}
}

func galleryFromModel(m GalleryModel) domain.GalleryItem {
	return domain.GalleryItem{
		ID: m.ID, ImageURL: m.ImageURL, Caption: m.Caption,
		IsFeatured: m.IsFeatured, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func quoteToModel(q domain.Quote) QuoteModel {
	return QuoteModel{
		ID: q.ID, Text: q.Text, Author: q.Author,
		IsFeatured: q.IsFeatured, CreatedAt: q.CreatedAt, UpdatedAt: q.UpdatedAt,
	}
}

func quoteFromModel(m QuoteModel) domain.Quote {
	return domain.Quote{
		ID: m.ID, Text: m.Text, Author: m.Author,
		IsFeatured: m.IsFeatured, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func foodToModel(f domain.Food) FoodModel {
	return FoodModel{
		ID: f.ID, Name: f.Name, Description: f.Description, ImageURL: f.ImageURL,
		IsFeatured: f.IsFeatured, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt,
	}
}

func foodFromModel(m FoodModel) domain.Food {
	return domain.Food{
		ID: m.ID, Name: m.Name, Description: m.Description, ImageURL: m.ImageURL,
		IsFeatured: m.IsFeatured, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func songToModel(s domain.Song) SongModel {
	return SongModel{
		ID: s.ID, Title: s.Title, Artist: s.Artist, YoutubeURL: s.YoutubeURL,
		Description: s.Description, IsFeatured: s.IsFeatured,
		CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt,
	}
}

func songFromModel(m SongModel) domain.Song {
	return domain.Song{
		ID: m.ID, Title: m.Title, Artist: m.Artist, YoutubeURL: m.YoutubeURL,
		Description: m.Description, IsFeatured: m.IsFeatured,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func movieToModel(mv domain.Movie) MovieModel {
	return MovieModel{
		ID: mv.ID, Title: mv.Title, Director: mv.Director, Description: mv.Description,
		ImageURL: mv.ImageURL, IsFeatured: mv.IsFeatured,
		CreatedAt: mv.CreatedAt, UpdatedAt: mv.UpdatedAt,
	}
}

func movieFromModel(m MovieModel) domain.Movie {
	return domain.Movie{
		ID: m.ID, Title: m.Title, Director: m.Director, Description: m.Description,
		ImageURL: m.ImageURL, IsFeatured: m.IsFeatured,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func memoryBookToModel(b domain.MemoryBook) MemoryBookModel {
	return MemoryBookModel{
		ID: b.ID, Title: b.Title, Content: b.Content, Date: b.Date,
		ImageURL: b.ImageURL, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt,
	}
}

func memoryBookFromModel(m MemoryBookModel) domain.MemoryBook {
	return domain.MemoryBook{
		ID: m.ID, Title: m.Title, Content: m.Content, Date: m.Date,
		ImageURL: m.ImageURL, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func navigationToModel(n domain.NavigationItem) NavigationModel {
	return NavigationModel{
		ID: n.ID, Title: n.Title, Path: n.Path, Icon: n.Icon, Order: n.Order,
		IsVisible: n.IsVisible, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt,
	}
}

func navigationFromModel(m NavigationModel) domain.NavigationItem {
	return domain.NavigationItem{
		ID: m.ID, Title: m.Title, Path: m.Path, Icon: m.Icon, Order: m.Order,
		IsVisible: m.IsVisible, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func pageContentToModel(pc domain.PageContent) PageContentModel {
	return PageContentModel{
		ID: pc.ID, PageName: pc.PageName, Title: pc.Title, Subtitle: pc.Subtitle,
		Content: pc.Content, ImageURL: pc.ImageURL, HeroImageURL: pc.HeroImageURL,
		MetaDescription: pc.MetaDescription, IsPublished: pc.IsPublished,
		CreatedAt: pc.CreatedAt, UpdatedAt: pc.UpdatedAt,
	}
}

func pageContentFromModel(m PageContentModel) domain.PageContent {
	return domain.PageContent{
		ID: m.ID, PageName: m.PageName, Title: m.Title, Subtitle: m.Subtitle,
		Content: m.Content, ImageURL: m.ImageURL, HeroImageURL: m.HeroImageURL,
		MetaDescription: m.MetaDescription, IsPublished: m.IsPublished,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func captionToModel(c domain.Caption) CaptionModel {
	return CaptionModel{
		ID: c.ID, ImageID: c.ImageID, MemoryID: c.MemoryID,
		Caption: c.Caption, ModelUsed: c.ModelUsed, GeneratedAt: c.GeneratedAt,
	}
}

func captionFromModel(m CaptionModel) domain.Caption {
	return domain.Caption{
		ID: m.ID, ImageID: m.ImageID, MemoryID: m.MemoryID,
		Caption: m.Caption, ModelUsed: m.ModelUsed, GeneratedAt: m.GeneratedAt,
	}
}

func adminToModel(a domain.Admin) AdminModel {
	return AdminModel{
		ID: a.ID, Email: a.Email, PasswordHash: a.PasswordHash, Name: a.Name,
		LastLogin: a.LastLogin, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

func adminFromModel(m AdminModel) domain.Admin {
	return domain.Admin{
		ID: m.ID, Email: m.Email, PasswordHash: m.PasswordHash, Name: m.Name,
		LastLogin: m.LastLogin, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func visitorToModel(v domain.Visitor) (VisitorModel, error) {
	model := VisitorModel{
		ID: v.ID, IP: v.IP, UserAgent: v.UserAgent,
		Verified: v.Verified, VisitedAt: v.VisitedAt,
	}
	if len(v.Meta) > 0 {
		raw, err := json.Marshal(v.Meta)
		if err != nil {
			return VisitorModel{}, err
		}
		model.Meta = datatypes.JSON(raw)
	}
	return model, nil
}

func visitorFromModel(m VisitorModel) domain.Visitor {
	v := domain.Visitor{
		ID: m.ID, IP: m.IP, UserAgent: m.UserAgent,
		Verified: m.Verified, VisitedAt: m.VisitedAt,
	}
	if len(m.Meta) > 0 {
		// Meta is best-effort metadata; a malformed blob is ignored.
		_ = json.Unmarshal(m.Meta, &v.Meta)
	}
	return v
}
