package service

import (
	"time"

	"github.com/jhoicas/Reembolsos-api/internal/application/dto"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
	"github.com/jhoicas/Reembolsos-api/internal/domain/validation"
)

// ReimbService aplica las reglas de negocio de reembolsos: validación de
// entrada y la política de transición pending -> {approved, denied}.
type ReimbService struct {
	repo repository.ReimbursementRepository
}

// NewReimbService construye el servicio con el puerto de persistencia.
func NewReimbService(repo repository.ReimbursementRepository) *ReimbService {
	return &ReimbService{repo: repo}
}

// GetAllReimbs obtiene todos los reembolsos; una colección vacía es ResourceNotFound.
func (s *ReimbService) GetAllReimbs() ([]dto.ReimbResponse, error) {
	reimbs, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(reimbs) == 0 {
		return nil, domain.NewResourceNotFound("No reimbursements found.")
	}
	return reimbsToResponses(reimbs), nil
}

// GetReimbByID obtiene un reembolso por id.
func (s *ReimbService) GetReimbByID(id int) (*dto.ReimbResponse, error) {
	if id < 1 {
		return nil, domain.NewBadRequest("Provided id is not a number")
	}
	reimb, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(reimb) {
		return nil, domain.NewResourceNotFound("A reimbursement could not be found with the provided id")
	}
	return reimbToResponse(reimb), nil
}

// GetReimbsByUserID obtiene los reembolsos presentados por un autor.
func (s *ReimbService) GetReimbsByUserID(userID int) ([]dto.ReimbResponse, error) {
	if userID < 1 {
		return nil, domain.NewBadRequest("Given input is not a valid number.")
	}
	reimbs, err := s.repo.GetByAuthor(userID)
	if err != nil {
		return nil, err
	}
	if len(reimbs) == 0 {
		return nil, domain.NewResourceNotFound("No reimbursements found with provided author Id.")
	}
	return reimbsToResponses(reimbs), nil
}

// AddNewReimb valida y persiste un reembolso nuevo. El estado y el tipo se
// confían como ids ya válidos en la creación (sin chequeo de rango); el
// estado por defecto es pending y la fecha de presentación, ahora.
func (s *ReimbService) AddNewReimb(in dto.NewReimbRequest) (*dto.ReimbResponse, error) {
	if in.Submitted.IsZero() {
		in.Submitted = time.Now()
	}
	if in.StatusID == 0 {
		in.StatusID = entity.StatusPending
	}
	if !validation.IsValidObject(in) {
		return nil, domain.NewBadRequest("Reimbursement object provided is invalid or contains an invalid value")
	}
	created, err := s.repo.Save(&entity.NewReimbursement{
		Amount:      in.Amount,
		Submitted:   in.Submitted,
		Description: in.Description,
		AuthorID:    in.AuthorID,
		StatusID:    in.StatusID,
		TypeID:      in.TypeID,
	})
	if err != nil {
		return nil, err
	}
	return reimbToResponse(created), nil
}

// UpdateReimb valida y persiste una actualización, incluida la resolución.
// resolved y resolver_id son anulables en la validación de forma; estado y
// tipo se coercionan a número y se verifican contra el rango de ids
// enumerados antes de tocar el repositorio. Un estado terminal exige
// resolved y resolver_id no nulos en la misma llamada.
func (s *ReimbService) UpdateReimb(in dto.UpdateReimbRequest) (bool, error) {
	if !validation.IsValidObject(in, "resolved", "resolver_id") {
		return false, domain.NewBadRequest("Provided input is not a valid object, or contains invalid characteristics")
	}

	status, okStatus := validation.AsNumber(in.Status)
	typ, okType := validation.AsNumber(in.Type)
	if !okStatus || !okType {
		return false, domain.NewDataPersistance("Reimbursement Status or Type are not valid numbers")
	}

	statusID, typeID := int(status), int(typ)
	if statusID < entity.StatusPending || statusID > entity.MaxStatusID ||
		typeID < entity.TypeLodging || typeID > entity.MaxTypeID {
		return false, domain.NewDataPersistance("Reimbursement Status or Type is not a valid id")
	}

	if entity.IsTerminalStatus(statusID) && (in.Resolved == nil || in.ResolverID == nil) {
		return false, domain.NewBadRequest("A terminal status requires resolved and resolver_id in the same update.")
	}

	err := s.repo.UpdateByID(&entity.Reimbursement{
		ID:          in.ID,
		Amount:      in.Amount,
		Submitted:   in.Submitted,
		Resolved:    in.Resolved,
		Description: in.Description,
		AuthorID:    in.AuthorID,
		ResolverID:  in.ResolverID,
		StatusID:    statusID,
		TypeID:      typeID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func reimbToResponse(rb *entity.Reimbursement) *dto.ReimbResponse {
	if rb == nil {
		return nil
	}
	return &dto.ReimbResponse{
		ID:          rb.ID,
		Amount:      rb.Amount,
		Submitted:   rb.Submitted,
		Resolved:    rb.Resolved,
		Description: rb.Description,
		AuthorID:    rb.AuthorID,
		ResolverID:  rb.ResolverID,
		StatusID:    rb.StatusID,
		Status:      entity.StatusName(rb.StatusID),
		TypeID:      rb.TypeID,
		Type:        entity.TypeName(rb.TypeID),
	}
}

func reimbsToResponses(reimbs []entity.Reimbursement) []dto.ReimbResponse {
	out := make([]dto.ReimbResponse, 0, len(reimbs))
	for i := range reimbs {
		out = append(out, *reimbToResponse(&reimbs[i]))
	}
	return out
}
