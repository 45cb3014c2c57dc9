package postgres

import (
	"context"
	"fmt"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	servicesTable        = "services"
	serviceRequestsTable = "service_requests"
)

func (p *PgSQL) StoreService(ctx context.Context, service domain.Service) (*domain.Service, error) {
	var row PgService
	row.FromDomain(service)

	var result PgService
	if _, err := p.Builder.Insert(servicesTable).
		Rows(row).
		Returning(&PgService{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store service into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ServiceByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error) {
	var row PgService
	found, err := p.Builder.From(servicesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch service by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateService(ctx context.Context,
	id domain.ServiceID,
	updates storage.ServiceUpdates) (*domain.Service, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "name", updates.Name)
	setIf(rec, "description", updates.Description)
	setIf(rec, "category", updates.Category)
	setIf(rec, "price", updates.Price)
	setIf(rec, "delivery_days", updates.DeliveryDays)
	setIf(rec, "status", updates.Status)

	var row PgService
	found, err := p.Builder.Update(servicesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgService{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update service in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Services(ctx context.Context, filter storage.ServiceFilter) (storage.Page[domain.Service], error) {
	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Category != "" {
		w = append(w, goqu.I("category").Eq(filter.Category))
	}

	page, err := fetchPage(ctx, p.Builder.From(servicesTable).Where(w...), filter.Cursor,
		func(r *PgService) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgService).ToDomain)
	if err != nil {
		return storage.Page[domain.Service]{}, fmt.Errorf("could not fetch services from pg: %w", err)
	}

	return page, nil
}

func (p *PgSQL) StoreServiceRequest(ctx context.Context,
	request domain.ServiceRequest) (*domain.ServiceRequest, error) {
	var row PgServiceRequest
	row.FromDomain(request)

	var result PgServiceRequest
	if _, err := p.Builder.Insert(serviceRequestsTable).
		Rows(row).
		Returning(&PgServiceRequest{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store service request into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) ServiceRequestByID(ctx context.Context,
	id domain.ServiceRequestID) (*domain.ServiceRequest, error) {
	var row PgServiceRequest
	found, err := p.Builder.From(serviceRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch service request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LockServiceRequest(ctx context.Context,
	id domain.ServiceRequestID) (*domain.ServiceRequest, error) {
	var row PgServiceRequest
	found, err := p.lockByID(ctx, serviceRequestsTable, uuid.UUID(id), &row)
	if err != nil || !found {
		return nil, err
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateServiceRequest(ctx context.Context,
	id domain.ServiceRequestID,
	status domain.ServiceRequestStatus,
	adminNotes *string) (*domain.ServiceRequest, error) {
	rec := goqu.Record{
		"status":     string(status),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIf(rec, "admin_notes", adminNotes)

	var row PgServiceRequest
	found, err := p.Builder.Update(serviceRequestsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgServiceRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update service request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ServiceRequests(ctx context.Context,
	filter storage.ServiceRequestFilter) (storage.Page[domain.ServiceRequest], error) {
	var w []goqu.Expression
	if filter.UserID != nil {
		w = append(w, goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	if filter.ServiceID != nil {
		w = append(w, goqu.I("service_id").Eq(uuid.UUID(*filter.ServiceID)))
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(serviceRequestsTable).Where(w...), filter.Cursor,
		func(r *PgServiceRequest) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgServiceRequest).ToDomain)
	if err != nil {
		return storage.Page[domain.ServiceRequest]{}, fmt.Errorf("could not fetch service requests from pg: %w", err)
	}

	return page, nil
}
