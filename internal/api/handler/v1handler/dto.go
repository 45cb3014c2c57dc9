package v1handler

import (
	"time"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Page is the JSON envelope of every listing response.
type Page[T any] struct {
	Items      []T               `json:"items"`
	NextCursor *storage.Position `json:"nextCursor,omitempty"`
}

func toPage[S, T any](in storage.Page[S], conv func(*S) T) Page[T] {
	out := Page[T]{Items: make([]T, 0, len(in.Items)), NextCursor: in.NextCursor}
	for i := range in.Items {
		out.Items = append(out.Items, conv(&in.Items[i]))
	}

	return out
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func optUserID(id *domain.UserID) *uuid.UUID {
	if id == nil {
		return nil
	}
	u := uuid.UUID(*id)

	return &u
}

type User struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      string          `json:"role"`
	Status    string          `json:"status"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

func DomainUserToV1(in *domain.User) User {
	return User{
		ID:        uuid.UUID(in.ID),
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      string(in.Role),
		Status:    string(in.Status),
		Balance:   in.Balance,
		CreatedAt: in.CreatedAt,
		UpdatedAt: optTime(in.UpdatedAt),
	}
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      User      `json:"user"`
}

type Overview struct {
	UsersByRole            map[string]int64 `json:"usersByRole"`
	TotalBalance           decimal.Decimal  `json:"totalBalance"`
	CommissionEarned       decimal.Decimal  `json:"commissionEarned"`
	CompletedVolume        decimal.Decimal  `json:"completedVolume"`
	PendingWebsites        int64            `json:"pendingWebsites"`
	PendingListings        int64            `json:"pendingListings"`
	PendingPurchases       int64            `json:"pendingPurchases"`
	OpenDisputes           int64            `json:"openDisputes"`
	PendingBalanceRequests int64            `json:"pendingBalanceRequests"`
	PendingServiceRequests int64            `json:"pendingServiceRequests"`
}

func DomainOverviewToV1(in *domain.Overview) Overview {
	byRole := make(map[string]int64, len(in.UsersByRole))
	for role, n := range in.UsersByRole {
		byRole[string(role)] = n
	}

	return Overview{
		UsersByRole:            byRole,
		TotalBalance:           in.TotalBalance,
		CommissionEarned:       in.CommissionEarned,
		CompletedVolume:        in.CompletedVolume,
		PendingWebsites:        in.PendingWebsites,
		PendingListings:        in.PendingListings,
		PendingPurchases:       in.PendingPurchases,
		OpenDisputes:           in.OpenDisputes,
		PendingBalanceRequests: in.PendingBalanceRequests,
		PendingServiceRequests: in.PendingServiceRequests,
	}
}

type Website struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	URL             string     `json:"url"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category,omitempty"`
	Language        string     `json:"language,omitempty"`
	DomainAuthority int        `json:"domainAuthority"`
	MonthlyTraffic  int64      `json:"monthlyTraffic"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func DomainWebsiteToV1(in *domain.Website) Website {
	return Website{
		ID:              uuid.UUID(in.ID),
		OwnerID:         uuid.UUID(in.OwnerID),
		URL:             in.URL,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Language:        in.Language,
		DomainAuthority: in.DomainAuthority,
		MonthlyTraffic:  in.MonthlyTraffic,
		Status:          string(in.Status),
		RejectionReason: in.RejectionReason,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       optTime(in.UpdatedAt),
	}
}

type Listing struct {
	ID              uuid.UUID       `json:"id"`
	WebsiteID       uuid.UUID       `json:"websiteId"`
	PublisherID     uuid.UUID       `json:"publisherId"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	LinkType        string          `json:"linkType"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

func DomainListingToV1(in *domain.Listing) Listing {
	return Listing{
		ID:              uuid.UUID(in.ID),
		WebsiteID:       uuid.UUID(in.WebsiteID),
		PublisherID:     uuid.UUID(in.PublisherID),
		Title:           in.Title,
		Description:     in.Description,
		Price:           in.Price,
		LinkType:        string(in.LinkType),
		Status:          string(in.Status),
		RejectionReason: in.RejectionReason,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       optTime(in.UpdatedAt),
	}
}

type Purchase struct {
	ID              uuid.UUID       `json:"id"`
	ListingID       uuid.UUID       `json:"listingId"`
	AdvertiserID    uuid.UUID       `json:"advertiserId"`
	PublisherID     uuid.UUID       `json:"publisherId"`
	TargetURL       string          `json:"targetUrl"`
	AnchorText      string          `json:"anchorText"`
	Notes           string          `json:"notes,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Commission      decimal.Decimal `json:"commission"`
	ArticleURL      string          `json:"articleUrl,omitempty"`
	PlacementURL    string          `json:"placementUrl,omitempty"`
	Status          string          `json:"status"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

func DomainPurchaseToV1(in *domain.Purchase) Purchase {
	return Purchase{
		ID:              uuid.UUID(in.ID),
		ListingID:       uuid.UUID(in.ListingID),
		AdvertiserID:    uuid.UUID(in.AdvertiserID),
		PublisherID:     uuid.UUID(in.PublisherID),
		TargetURL:       in.TargetURL,
		AnchorText:      in.AnchorText,
		Notes:           in.Notes,
		Price:           in.Price,
		Commission:      in.Commission,
		ArticleURL:      in.ArticleURL,
		PlacementURL:    in.PlacementURL,
		Status:          string(in.Status),
		RejectionReason: in.RejectionReason,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       optTime(in.UpdatedAt),
	}
}

type Dispute struct {
	ID          uuid.UUID  `json:"id"`
	PurchaseID  uuid.UUID  `json:"purchaseId"`
	RaisedBy    uuid.UUID  `json:"raisedBy"`
	Reason      string     `json:"reason"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Outcome     string     `json:"outcome,omitempty"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedBy  *uuid.UUID `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func DomainDisputeToV1(in *domain.Dispute) Dispute {
	return Dispute{
		ID:          uuid.UUID(in.ID),
		PurchaseID:  uuid.UUID(in.PurchaseID),
		RaisedBy:    uuid.UUID(in.RaisedBy),
		Reason:      in.Reason,
		Description: in.Description,
		Status:      string(in.Status),
		Outcome:     string(in.Outcome),
		Resolution:  in.Resolution,
		ResolvedBy:  optUserID(in.ResolvedBy),
		ResolvedAt:  optTime(in.ResolvedAt),
		CreatedAt:   in.CreatedAt,
	}
}

type BalanceRequest struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	AdminNote     string          `json:"adminNote,omitempty"`
	ProcessedBy   *uuid.UUID      `json:"processedBy,omitempty"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func DomainBalanceRequestToV1(in *domain.BalanceRequest) BalanceRequest {
	return BalanceRequest{
		ID:            uuid.UUID(in.ID),
		UserID:        uuid.UUID(in.UserID),
		Type:          string(in.Type),
		Amount:        in.Amount,
		Commission:    in.Commission,
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		Status:        string(in.Status),
		AdminNote:     in.AdminNote,
		ProcessedBy:   optUserID(in.ProcessedBy),
		ProcessedAt:   optTime(in.ProcessedAt),
		CreatedAt:     in.CreatedAt,
	}
}

type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	ReferenceType string          `json:"referenceType,omitempty"`
	ReferenceID   *uuid.UUID      `json:"referenceId,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedBy     *uuid.UUID      `json:"createdBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func DomainTransactionToV1(in *domain.Transaction) Transaction {
	out := Transaction{
		ID:            uuid.UUID(in.ID),
		UserID:        uuid.UUID(in.UserID),
		Type:          string(in.Type),
		Amount:        in.Amount,
		Commission:    in.Commission,
		BalanceBefore: in.BalanceBefore,
		BalanceAfter:  in.BalanceAfter,
		Description:   in.Description,
		CreatedBy:     optUserID(in.CreatedBy),
		CreatedAt:     in.CreatedAt,
	}
	if !in.Reference.IsZero() {
		id := in.Reference.ID
		out.ReferenceType = string(in.Reference.Type)
		out.ReferenceID = &id
	}

	return out
}

type Service struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"deliveryDays"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func DomainServiceToV1(in *domain.Service) Service {
	return Service{
		ID:           uuid.UUID(in.ID),
		Name:         in.Name,
		Description:  in.Description,
		Category:     in.Category,
		Price:        in.Price,
		DeliveryDays: in.DeliveryDays,
		Status:       string(in.Status),
		CreatedAt:    in.CreatedAt,
	}
}

type ServiceRequest struct {
	ID         uuid.UUID       `json:"id"`
	ServiceID  uuid.UUID       `json:"serviceId"`
	UserID     uuid.UUID       `json:"userId"`
	Price      decimal.Decimal `json:"price"`
	Notes      string          `json:"notes,omitempty"`
	AdminNotes string          `json:"adminNotes,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt,omitempty"`
}

func DomainServiceRequestToV1(in *domain.ServiceRequest) ServiceRequest {
	return ServiceRequest{
		ID:         uuid.UUID(in.ID),
		ServiceID:  uuid.UUID(in.ServiceID),
		UserID:     uuid.UUID(in.UserID),
		Price:      in.Price,
		Notes:      in.Notes,
		AdminNotes: in.AdminNotes,
		Status:     string(in.Status),
		CreatedAt:  in.CreatedAt,
		UpdatedAt:  optTime(in.UpdatedAt),
	}
}

type BlogPost struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	Status        string     `json:"status"`
	AuthorID      *uuid.UUID `json:"authorId,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func DomainBlogPostToV1(in *domain.BlogPost) BlogPost {
	return BlogPost{
		ID:            uuid.UUID(in.ID),
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		CoverImageURL: in.CoverImageURL,
		Status:        string(in.Status),
		AuthorID:      optUserID(in.AuthorID),
		PublishedAt:   optTime(in.PublishedAt),
		CreatedAt:     in.CreatedAt,
	}
}

type SuccessStory struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	ClientName  string     `json:"clientName"`
	WebsiteURL  string     `json:"websiteUrl,omitempty"`
	Content     string     `json:"content"`
	Rating      int        `json:"rating"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func DomainStoryToV1(in *domain.SuccessStory) SuccessStory {
	return SuccessStory{
		ID:          uuid.UUID(in.ID),
		Title:       in.Title,
		ClientName:  in.ClientName,
		WebsiteURL:  in.WebsiteURL,
		Content:     in.Content,
		Rating:      in.Rating,
		Status:      string(in.Status),
		PublishedAt: optTime(in.PublishedAt),
		CreatedAt:   in.CreatedAt,
	}
}
