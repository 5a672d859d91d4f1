package nursing

import (
	"context"

	"github.com/hms/hms/internal/platform/apierr"
	"github.com/hms/hms/internal/platform/ref"
)

type Service struct {
	nurses   NurseRepository
	resolver *ref.Resolver
}

func NewService(nurses NurseRepository, resolver *ref.Resolver) *Service {
	return &Service{nurses: nurses, resolver: resolver}
}

func (s *Service) CreateNurse(ctx context.Context, n *Nurse) error {
	if n.Name == "" {
		return apierr.Required("name")
	}
	if n.Contact == "" {
		return apierr.Required("contact")
	}
	if n.Shift != "" && !ValidShifts[n.Shift] {
		return apierr.Invalid("shift", "must be one of Morning, Evening, Night")
	}
	if err := s.resolver.ValidateRefs(ctx, []ref.FieldRef{
		{Field: "departmentId", Kind: ref.Department, ID: n.DepartmentID},
	}); err != nil {
		return err
	}
	return apierr.Storage("create nurse", s.nurses.Create(ctx, n))
}

// ListNurses returns all nurses in insertion order with the optional
// department reference expanded.
func (s *Service) ListNurses(ctx context.Context) ([]*NurseView, error) {
	items, err := s.nurses.List(ctx)
	if err != nil {
		return nil, apierr.Storage("list nurses", err)
	}
	views := make([]*NurseView, 0, len(items))
	for _, n := range items {
		dept, err := s.resolver.Expand(ctx, ref.Department, n.DepartmentID)
		if err != nil {
			return nil, err
		}
		views = append(views, &NurseView{
			ID:         n.ID,
			Name:       n.Name,
			Contact:    n.Contact,
			Shift:      n.Shift,
			Department: dept,
			CreatedAt:  n.CreatedAt,
		})
	}
	return views, nil
}
