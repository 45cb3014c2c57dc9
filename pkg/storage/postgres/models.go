package postgres

import (
	"database/sql"
	"time"

	"backma/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row structs mirror the tables column by column. Generated and defaulted
// columns are tagged skipinsert so inserts leave them to the database.

type PgUser struct {
	ID           uuid.UUID       `db:"id"            goqu:"skipinsert"`
	Email        string          `db:"email"`
	FullName     string          `db:"full_name"`
	Role         string          `db:"role"`
	Status       string          `db:"status"`
	Balance      decimal.Decimal `db:"balance"`
	PasswordHash string          `db:"password_hash"`
	CreatedAt    time.Time       `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    sql.NullTime    `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		FullName:     p.FullName,
		Role:         domain.Role(p.Role),
		Status:       domain.UserStatus(p.Status),
		Balance:      p.Balance,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(u.ID),
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Status:       string(u.Status),
		Balance:      u.Balance,
		PasswordHash: u.PasswordHash,
	}
}

type PgWebsite struct {
	ID              uuid.UUID      `db:"id"               goqu:"skipinsert"`
	OwnerID         uuid.UUID      `db:"owner_id"`
	URL             string         `db:"url"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Category        string         `db:"category"`
	Language        string         `db:"language"`
	DomainAuthority int            `db:"domain_authority"`
	MonthlyTraffic  int64          `db:"monthly_traffic"`
	Status          string         `db:"status"`
	RejectionReason sql.NullString `db:"rejection_reason" goqu:"skipinsert"`
	CreatedAt       time.Time      `db:"created_at"       goqu:"skipinsert"`
	UpdatedAt       sql.NullTime   `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgWebsite) ToDomain() *domain.Website {
	return &domain.Website{
		ID:              domain.WebsiteID(p.ID),
		OwnerID:         domain.UserID(p.OwnerID),
		URL:             p.URL,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Language:        p.Language,
		DomainAuthority: p.DomainAuthority,
		MonthlyTraffic:  p.MonthlyTraffic,
		Status:          domain.WebsiteStatus(p.Status),
		RejectionReason: p.RejectionReason.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgWebsite) FromDomain(w domain.Website) {
	*p = PgWebsite{
		ID:              uuid.UUID(w.ID),
		OwnerID:         uuid.UUID(w.OwnerID),
		URL:             w.URL,
		Name:            w.Name,
		Description:     w.Description,
		Category:        w.Category,
		Language:        w.Language,
		DomainAuthority: w.DomainAuthority,
		MonthlyTraffic:  w.MonthlyTraffic,
		Status:          string(w.Status),
	}
}

type PgListing struct {
	ID              uuid.UUID       `db:"id"               goqu:"skipinsert"`
	WebsiteID       uuid.UUID       `db:"website_id"`
	PublisherID     uuid.UUID       `db:"publisher_id"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	Price           decimal.Decimal `db:"price"`
	LinkType        string          `db:"link_type"`
	Status          string          `db:"status"`
	RejectionReason sql.NullString  `db:"rejection_reason" goqu:"skipinsert"`
	CreatedAt       time.Time       `db:"created_at"       goqu:"skipinsert"`
	UpdatedAt       sql.NullTime    `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgListing) ToDomain() *domain.Listing {
	return &domain.Listing{
		ID:              domain.ListingID(p.ID),
		WebsiteID:       domain.WebsiteID(p.WebsiteID),
		PublisherID:     domain.UserID(p.PublisherID),
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		LinkType:        domain.LinkType(p.LinkType),
		Status:          domain.ListingStatus(p.Status),
		RejectionReason: p.RejectionReason.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgListing) FromDomain(l domain.Listing) {
	*p = PgListing{
		ID:          uuid.UUID(l.ID),
		WebsiteID:   uuid.UUID(l.WebsiteID),
		PublisherID: uuid.UUID(l.PublisherID),
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		LinkType:    string(l.LinkType),
		Status:      string(l.Status),
	}
}

type PgPurchase struct {
	ID              uuid.UUID       `db:"id"               goqu:"skipinsert"`
	ListingID       uuid.UUID       `db:"listing_id"`
	AdvertiserID    uuid.UUID       `db:"advertiser_id"`
	PublisherID     uuid.UUID       `db:"publisher_id"`
	TargetURL       string          `db:"target_url"`
	AnchorText      string          `db:"anchor_text"`
	Notes           string          `db:"notes"`
	Price           decimal.Decimal `db:"price"`
	Commission      decimal.Decimal `db:"commission"`
	ArticleURL      sql.NullString  `db:"article_url"      goqu:"skipinsert"`
	PlacementURL    sql.NullString  `db:"placement_url"    goqu:"skipinsert"`
	Status          string          `db:"status"`
	RejectionReason sql.NullString  `db:"rejection_reason" goqu:"skipinsert"`
	CreatedAt       time.Time       `db:"created_at"       goqu:"skipinsert"`
	UpdatedAt       sql.NullTime    `db:"updated_at"       goqu:"skipinsert"`
}

func (p *PgPurchase) ToDomain() *domain.Purchase {
	return &domain.Purchase{
		ID:              domain.PurchaseID(p.ID),
		ListingID:       domain.ListingID(p.ListingID),
		AdvertiserID:    domain.UserID(p.AdvertiserID),
		PublisherID:     domain.UserID(p.PublisherID),
		TargetURL:       p.TargetURL,
		AnchorText:      p.AnchorText,
		Notes:           p.Notes,
		Price:           p.Price,
		Commission:      p.Commission,
		ArticleURL:      p.ArticleURL.String,
		PlacementURL:    p.PlacementURL.String,
		Status:          domain.PurchaseStatus(p.Status),
		RejectionReason: p.RejectionReason.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgPurchase) FromDomain(d domain.Purchase) {
	*p = PgPurchase{
		ID:           uuid.UUID(d.ID),
		ListingID:    uuid.UUID(d.ListingID),
		AdvertiserID: uuid.UUID(d.AdvertiserID),
		PublisherID:  uuid.UUID(d.PublisherID),
		TargetURL:    d.TargetURL,
		AnchorText:   d.AnchorText,
		Notes:        d.Notes,
		Price:        d.Price,
		Commission:   d.Commission,
		Status:       string(d.Status),
	}
}

type PgTransaction struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	UserID        uuid.UUID       `db:"user_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Commission    decimal.Decimal `db:"commission"`
	BalanceBefore decimal.Decimal `db:"balance_before"`
	BalanceAfter  decimal.Decimal `db:"balance_after"`
	ReferenceType sql.NullString  `db:"reference_type"`
	ReferenceID   uuid.NullUUID   `db:"reference_id"`
	Description   string          `db:"description"`
	CreatedBy     uuid.NullUUID   `db:"created_by"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgTransaction) ToDomain() *domain.Transaction {
	tx := &domain.Transaction{
		ID:            domain.TransactionID(p.ID),
		UserID:        domain.UserID(p.UserID),
		Type:          domain.TransactionType(p.Type),
		Amount:        p.Amount,
		Commission:    p.Commission,
		BalanceBefore: p.BalanceBefore,
		BalanceAfter:  p.BalanceAfter,
		Description:   p.Description,
		CreatedBy:     userIDPtr(p.CreatedBy),
		CreatedAt:     p.CreatedAt,
	}
	if p.ReferenceType.Valid {
		tx.Reference = domain.Reference{
			Type: domain.ReferenceType(p.ReferenceType.String),
			ID:   p.ReferenceID.UUID,
		}
	}

	return tx
}

func (p *PgTransaction) FromDomain(t domain.Transaction) {
	*p = PgTransaction{
		ID:            uuid.UUID(t.ID),
		UserID:        uuid.UUID(t.UserID),
		Type:          string(t.Type),
		Amount:        t.Amount,
		Commission:    t.Commission,
		BalanceBefore: t.BalanceBefore,
		BalanceAfter:  t.BalanceAfter,
		ReferenceType: sql.NullString{String: string(t.Reference.Type), Valid: !t.Reference.IsZero()},
		ReferenceID:   uuid.NullUUID{UUID: t.Reference.ID, Valid: !t.Reference.IsZero()},
		Description:   t.Description,
		CreatedBy:     nullUUID(t.CreatedBy),
	}
}

type PgService struct {
	ID           uuid.UUID       `db:"id"            goqu:"skipinsert"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Category     string          `db:"category"`
	Price        decimal.Decimal `db:"price"`
	DeliveryDays int             `db:"delivery_days"`
	Status       string          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    sql.NullTime    `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgService) ToDomain() *domain.Service {
	return &domain.Service{
		ID:           domain.ServiceID(p.ID),
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		DeliveryDays: p.DeliveryDays,
		Status:       domain.ServiceStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgService) FromDomain(s domain.Service) {
	*p = PgService{
		ID:           uuid.UUID(s.ID),
		Name:         s.Name,
		Description:  s.Description,
		Category:     s.Category,
		Price:        s.Price,
		DeliveryDays: s.DeliveryDays,
		Status:       string(s.Status),
	}
}

type PgServiceRequest struct {
	ID         uuid.UUID       `db:"id"          goqu:"skipinsert"`
	ServiceID  uuid.UUID       `db:"service_id"`
	UserID     uuid.UUID       `db:"user_id"`
	Price      decimal.Decimal `db:"price"`
	Notes      string          `db:"notes"`
	AdminNotes string          `db:"admin_notes"`
	Status     string          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt  sql.NullTime    `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgServiceRequest) ToDomain() *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ID:         domain.ServiceRequestID(p.ID),
		ServiceID:  domain.ServiceID(p.ServiceID),
		UserID:     domain.UserID(p.UserID),
		Price:      p.Price,
		Notes:      p.Notes,
		AdminNotes: p.AdminNotes,
		Status:     domain.ServiceRequestStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgServiceRequest) FromDomain(r domain.ServiceRequest) {
	*p = PgServiceRequest{
		ID:         uuid.UUID(r.ID),
		ServiceID:  uuid.UUID(r.ServiceID),
		UserID:     uuid.UUID(r.UserID),
		Price:      r.Price,
		Notes:      r.Notes,
		AdminNotes: r.AdminNotes,
		Status:     string(r.Status),
	}
}

type PgDispute struct {
	ID          uuid.UUID      `db:"id"                  goqu:"skipinsert"`
	PurchaseID  uuid.UUID      `db:"purchase_request_id"`
	RaisedBy    uuid.UUID      `db:"raised_by"`
	Reason      string         `db:"reason"`
	Description string         `db:"description"`
	Status      string         `db:"status"`
	Outcome     sql.NullString `db:"outcome"             goqu:"skipinsert"`
	Resolution  sql.NullString `db:"resolution"          goqu:"skipinsert"`
	ResolvedBy  uuid.NullUUID  `db:"resolved_by"         goqu:"skipinsert"`
	ResolvedAt  sql.NullTime   `db:"resolved_at"         goqu:"skipinsert"`
	CreatedAt   time.Time      `db:"created_at"          goqu:"skipinsert"`
	UpdatedAt   sql.NullTime   `db:"updated_at"          goqu:"skipinsert"`
}

func (p *PgDispute) ToDomain() *domain.Dispute {
	return &domain.Dispute{
		ID:          domain.DisputeID(p.ID),
		PurchaseID:  domain.PurchaseID(p.PurchaseID),
		RaisedBy:    domain.UserID(p.RaisedBy),
		Reason:      p.Reason,
		Description: p.Description,
		Status:      domain.DisputeStatus(p.Status),
		Outcome:     domain.DisputeOutcome(p.Outcome.String),
		Resolution:  p.Resolution.String,
		ResolvedBy:  userIDPtr(p.ResolvedBy),
		ResolvedAt:  p.ResolvedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgDispute) FromDomain(d domain.Dispute) {
	*p = PgDispute{
		ID:          uuid.UUID(d.ID),
		PurchaseID:  uuid.UUID(d.PurchaseID),
		RaisedBy:    uuid.UUID(d.RaisedBy),
		Reason:      d.Reason,
		Description: d.Description,
		Status:      string(d.Status),
	}
}

type PgBalanceRequest struct {
	ID            uuid.UUID       `db:"id"             goqu:"skipinsert"`
	UserID        uuid.UUID       `db:"user_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Commission    decimal.Decimal `db:"commission"     goqu:"skipinsert"`
	PaymentMethod string          `db:"payment_method"`
	Reference     string          `db:"reference"`
	Status        string          `db:"status"`
	AdminNote     sql.NullString  `db:"admin_note"     goqu:"skipinsert"`
	ProcessedBy   uuid.NullUUID   `db:"processed_by"   goqu:"skipinsert"`
	ProcessedAt   sql.NullTime    `db:"processed_at"   goqu:"skipinsert"`
	CreatedAt     time.Time       `db:"created_at"     goqu:"skipinsert"`
	UpdatedAt     sql.NullTime    `db:"updated_at"     goqu:"skipinsert"`
}

func (p *PgBalanceRequest) ToDomain() *domain.BalanceRequest {
	return &domain.BalanceRequest{
		ID:            domain.BalanceRequestID(p.ID),
		UserID:        domain.UserID(p.UserID),
		Type:          domain.BalanceRequestType(p.Type),
		Amount:        p.Amount,
		Commission:    p.Commission,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		Status:        domain.BalanceRequestStatus(p.Status),
		AdminNote:     p.AdminNote.String,
		ProcessedBy:   userIDPtr(p.ProcessedBy),
		ProcessedAt:   p.ProcessedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgBalanceRequest) FromDomain(r domain.BalanceRequest) {
	*p = PgBalanceRequest{
		ID:            uuid.UUID(r.ID),
		UserID:        uuid.UUID(r.UserID),
		Type:          string(r.Type),
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Reference:     r.Reference,
		Status:        string(r.Status),
	}
}

type PgBlogPost struct {
	ID            uuid.UUID     `db:"id"              goqu:"skipinsert"`
	Title         string        `db:"title"`
	Slug          string        `db:"slug"`
	Excerpt       string        `db:"excerpt"`
	Content       string        `db:"content"`
	CoverImageURL string        `db:"cover_image_url"`
	Status        string        `db:"status"`
	AuthorID      uuid.NullUUID `db:"author_id"`
	PublishedAt   sql.NullTime  `db:"published_at"`
	CreatedAt     time.Time     `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt     sql.NullTime  `db:"updated_at"      goqu:"skipinsert"`
	DeletedAt     sql.NullTime  `db:"deleted_at"      goqu:"skipinsert"`
}

func (p *PgBlogPost) ToDomain() *domain.BlogPost {
	return &domain.BlogPost{
		ID:            domain.BlogPostID(p.ID),
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		Status:        domain.PublicationStatus(p.Status),
		AuthorID:      userIDPtr(p.AuthorID),
		PublishedAt:   p.PublishedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgBlogPost) FromDomain(b domain.BlogPost) {
	*p = PgBlogPost{
		ID:            uuid.UUID(b.ID),
		Title:         b.Title,
		Slug:          b.Slug,
		Excerpt:       b.Excerpt,
		Content:       b.Content,
		CoverImageURL: b.CoverImageURL,
		Status:        string(b.Status),
		AuthorID:      nullUUID(b.AuthorID),
		PublishedAt:   sql.NullTime{Time: b.PublishedAt, Valid: !b.PublishedAt.IsZero()},
	}
}

type PgStory struct {
	ID          uuid.UUID    `db:"id"           goqu:"skipinsert"`
	Title       string       `db:"title"`
	ClientName  string       `db:"client_name"`
	WebsiteURL  string       `db:"website_url"`
	Content     string       `db:"content"`
	Rating      int          `db:"rating"`
	Status      string       `db:"status"`
	PublishedAt sql.NullTime `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
	DeletedAt   sql.NullTime `db:"deleted_at"   goqu:"skipinsert"`
}

func (p *PgStory) ToDomain() *domain.SuccessStory {
	return &domain.SuccessStory{
		ID:          domain.StoryID(p.ID),
		Title:       p.Title,
		ClientName:  p.ClientName,
		WebsiteURL:  p.WebsiteURL,
		Content:     p.Content,
		Rating:      p.Rating,
		Status:      domain.PublicationStatus(p.Status),
		PublishedAt: p.PublishedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgStory) FromDomain(s domain.SuccessStory) {
	*p = PgStory{
		ID:          uuid.UUID(s.ID),
		Title:       s.Title,
		ClientName:  s.ClientName,
		WebsiteURL:  s.WebsiteURL,
		Content:     s.Content,
		Rating:      s.Rating,
		Status:      string(s.Status),
		PublishedAt: sql.NullTime{Time: s.PublishedAt, Valid: !s.PublishedAt.IsZero()},
	}
}

func nullUUID(id *domain.UserID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func userIDPtr(id uuid.NullUUID) *domain.UserID {
	if !id.Valid {
		return nil
	}
	uid := domain.UserID(id.UUID)

	return &uid
}
