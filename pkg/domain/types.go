package domain

import "time"

type Role string

const (
	RoleVisitor Role = "visitor"
	RoleAdmin   Role = "admin"
)

// Memory is one timeline entry. Date is the moment the memory happened,
// not when the row was created.
type Memory struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type GalleryItem struct {
	ID         int64     `json:"id"`
	ImageURL   string    `json:"imageUrl"`
	Caption    string    `json:"caption,omitempty"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Quote struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Author     string    `json:"author,omitempty"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Food struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Song struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist,omitempty"`
	YoutubeURL  string    `json:"youtubeUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Movie struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Director    string    `json:"director,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MemoryBook struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Date      *time.Time `json:"date,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NavigationItem rows render in ascending Order; equal orders keep
// insertion order.
type NavigationItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Path      string    `json:"path"`
	Icon      string    `json:"icon,omitempty"`
	Order     int       `json:"order"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageContent holds the editable copy for one page. PageName is the
// upsert key: one row per page.
type PageContent struct {
	ID              int64     `json:"id"`
	PageName        string    `json:"pageName"`
	Title           string    `json:"title,omitempty"`
	Subtitle        string    `json:"subtitle,omitempty"`
	Content         string    `json:"content,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	HeroImageURL    string    `json:"heroImageUrl,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	IsPublished     bool      `json:"isPublished"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Caption is a generated caption weakly referencing a gallery image or a
// memory. Deleting the referenced row deletes its captions.
type Caption struct {
	ID          int64     `json:"id"`
	ImageID     *int64    `json:"imageId,omitempty"`
	MemoryID    *int64    `json:"memoryId,omitempty"`
	Caption     string    `json:"caption"`
	ModelUsed   string    `json:"modelUsed,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Admin is the single dashboard account. The registration flow enforces
// at most one row.
type Admin struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Visitor is one row of the append-only visit audit log.
type Visitor struct {
	ID        int64             `json:"id"`
	IP        string            `json:"ip,omitempty"`
	UserAgent string            `json:"userAgent,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
	Verified  bool              `json:"verified"`
	VisitedAt time.Time         `json:"visitedAt"`
}
