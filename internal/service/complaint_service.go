package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintService coordinates the complaint lifecycle: creation with
// routing and SLA stamping, scoped reads, and audited status
// transitions.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	images     repository.ComplaintImageRepository
	logs       repository.StatusLogRepository
	categories repository.CategoryRepository
	zones      repository.ZoneRepository
	routing    *RoutingResolver
	scoper     *VisibilityScoper
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	ImageRepo     repository.ComplaintImageRepository
	StatusLogRepo repository.StatusLogRepository
	CategoryRepo  repository.CategoryRepository
	ZoneRepo      repository.ZoneRepository
	Routing       *RoutingResolver
	Scoper        *VisibilityScoper
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes the submission payload.
type ComplaintCreateInput struct {
	Title       string
	Description string
	CategoryID  int64
	ZoneID      int64
	Address     *string
	LocationLat *float64
	LocationLng *float64
	ImageURLs   []string
}

// ComplaintDetail is a complaint with its owned children.
type ComplaintDetail struct {
	Complaint *domain.Complaint
	Images    []domain.ComplaintImage
	Logs      []domain.StatusLog
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		images:     deps.ImageRepo,
		logs:       deps.StatusLogRepo,
		categories: deps.CategoryRepo,
		zones:      deps.ZoneRepo,
		routing:    deps.Routing,
		scoper:     deps.Scoper,
		dispatcher: deps.Dispatcher,
	}
}

// Create files a new complaint for the principal. The department is
// resolved from the category and the SLA deadline stamped, both exactly
// once, here.
func (s *ComplaintService) Create(ctx context.Context, principal domain.Principal, input ComplaintCreateInput) (*domain.Complaint, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" || input.CategoryID <= 0 || input.ZoneID <= 0 {
		return nil, apperrors.NewValidationError("title, description, category_id, zone_id required", nil)
	}
	if len(input.Title) > 255 {
		return nil, apperrors.NewValidationError("title exceeds 255 characters", nil)
	}

	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown category_id", map[string]any{"category_id": input.CategoryID})
		}
		return nil, err
	}
	zone, err := s.zones.GetByID(ctx, input.ZoneID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown zone_id", map[string]any{"zone_id": input.ZoneID})
		}
		return nil, err
	}

	departmentID, err := s.routing.Resolve(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	address := input.Address
	if address == nil || strings.TrimSpace(*address) == "" {
		fallback := zone.Name + ", " + zone.City
		address = &fallback
	}

	complaint := &domain.Complaint{
		ReferenceKey: generateReferenceKey(),
		UserID:       principal.ID,
		CategoryID:   category.ID,
		ZoneID:       zone.ID,
		DepartmentID: departmentID,
		Title:        input.Title,
		Description:  input.Description,
		LocationLat:  input.LocationLat,
		LocationLng:  input.LocationLng,
		Address:      address,
		Status:       domain.StatusSubmitted,
		Priority:     domain.PriorityMedium,
		SLADeadline:  SLADeadline(category, now),
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	for _, url := range input.ImageURLs {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		image := &domain.ComplaintImage{ComplaintID: complaint.ID, ImageURL: url}
		if err := s.images.Create(ctx, image); err != nil {
			return nil, err
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: principal.ID, Role: principal.Role},
		Payload: events.ComplaintCreatedPayload{
			ReferenceKey: complaint.ReferenceKey,
			CategoryID:   complaint.CategoryID,
			ZoneID:       complaint.ZoneID,
			DepartmentID: complaint.DepartmentID,
			Priority:     complaint.Priority,
			SLADeadline:  complaint.SLADeadline,
			Title:        complaint.Title,
		},
	})
	return complaint, nil
}

// List returns the complaints visible to the principal, newest first.
func (s *ComplaintService) List(ctx context.Context, principal domain.Principal) ([]domain.Complaint, error) {
	filter, visible := s.scoper.Scope(principal)
	if !visible {
		return []domain.Complaint{}, nil
	}
	return s.complaints.ListWithFilter(ctx, filter)
}

// Get fetches a single complaint with its images and audit trail,
// enforcing visibility.
func (s *ComplaintService) Get(ctx context.Context, principal domain.Principal, id int64) (*ComplaintDetail, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}
	if !s.scoper.IsVisible(principal, complaint) {
		return nil, apperrors.NewForbidden("complaint not visible to caller")
	}

	images, err := s.images.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByComplaint(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}
	return &ComplaintDetail{Complaint: complaint, Images: images, Logs: logs}, nil
}

// UpdateStatus applies a legal forward transition for an authorized
// principal and appends exactly one status log row, atomically.
func (s *ComplaintService) UpdateStatus(ctx context.Context, principal domain.Principal, id int64, newStatus domain.ComplaintStatus, remarks *string) (*domain.Complaint, error) {
	if !validStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": string(newStatus)})
	}

	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}

	// Authorization is checked before legality so a forbidden caller
	// and an out-of-order transition never get conflated.
	if !s.scoper.CanModify(principal, complaint) {
		return nil, apperrors.NewForbidden("caller may not transition this complaint")
	}

	oldStatus := complaint.Status
	if !isValidTransition(oldStatus, newStatus) {
		return nil, apperrors.NewIllegalTransition(string(oldStatus), string(newStatus))
	}

	var resolvedAt *time.Time
	if newStatus.IsTerminal() && complaint.ResolvedAt == nil {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	logEntry := &domain.StatusLog{
		ComplaintID: complaint.ID,
		ChangedBy:   principal.ID,
		OldStatus:   &oldStatus,
		NewStatus:   newStatus,
		Remarks:     remarks,
	}
	applied, err := s.complaints.TransitionStatus(ctx, complaint.ID, oldStatus, newStatus, resolvedAt, logEntry)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent transition won the compare-and-swap; this
		// request's old-status assumption no longer holds.
		return nil, apperrors.NewIllegalTransition(string(oldStatus), string(newStatus))
	}

	complaint.Status = newStatus
	if complaint.ResolvedAt == nil {
		complaint.ResolvedAt = resolvedAt
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: principal.ID, Role: principal.Role},
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Remarks:   derefString(remarks),
		},
	})
	return complaint, nil
}

// UpdatePriority changes a complaint's priority, scoped like
// transitions.
func (s *ComplaintService) UpdatePriority(ctx context.Context, principal domain.Principal, id int64, newPriority domain.ComplaintPriority) (*domain.Complaint, error) {
	if !domain.ValidPriority(newPriority) {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": string(newPriority)})
	}

	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}
	if !s.scoper.CanModify(principal, complaint) {
		return nil, apperrors.NewForbidden("caller may not reprioritize this complaint")
	}

	oldPriority := complaint.Priority
	if err := s.complaints.UpdatePriority(ctx, complaint.ID, newPriority); err != nil {
		return nil, err
	}
	complaint.Priority = newPriority

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintPriorityChanged,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: principal.ID, Role: principal.Role},
		Payload: events.ComplaintPriorityChangedPayload{
			OldPriority: oldPriority,
			NewPriority: newPriority,
		},
	})
	return complaint, nil
}

// allowedTransitions is the full forward edge set of the status graph.
// Self-loops are deliberately absent: re-requesting the current status
// is an illegal transition, forcing callers onto an explicit no-op path
// instead of silently double-logging.
var allowedTransitions = map[domain.ComplaintStatus][]domain.ComplaintStatus{
	domain.StatusSubmitted:  {domain.StatusAssigned, domain.StatusInProgress},
	domain.StatusAssigned:   {domain.StatusInProgress},
	domain.StatusInProgress: {domain.StatusResolved},
	domain.StatusResolved:   {domain.StatusClosed},
	domain.StatusClosed:     {},
}

func isValidTransition(current, next domain.ComplaintStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func validStatus(status domain.ComplaintStatus) bool {
	if status == domain.StatusSubmitted {
		return true
	}
	_, known := allowedTransitions[status]
	return known
}

func generateReferenceKey() string {
	return "CMP-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
