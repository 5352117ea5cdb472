package usecase_test

import (
	"sort"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio. Reproducen el contrato de
// los adaptadores Postgres: scoping por usuario, ErrNotFound en miss,
// ErrDuplicate en violación de unicidad y display_order secuencial por
// (user, entity_type).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomFieldRepo struct {
	fields []*entity.CustomField
}

func (r *fakeCustomFieldRepo) Create(field *entity.CustomField) error {
	maxOrder := 0
	for _, f := range r.fields {
		if f.UserID == field.UserID && f.EntityType == field.EntityType {
			if f.Slug == field.Slug {
				return domain.ErrDuplicate
			}
			if f.DisplayOrder > maxOrder {
				maxOrder = f.DisplayOrder
			}
		}
	}
	field.DisplayOrder = maxOrder + 1
	cp := *field
	r.fields = append(r.fields, &cp)
	return nil
}

func (r *fakeCustomFieldRepo) ListByUser(userID, entityType string) ([]*entity.CustomField, error) {
	var out []*entity.CustomField
	for _, f := range r.fields {
		if f.UserID == userID && (entityType == "" || f.EntityType == entityType) {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityType != out[j].EntityType {
			return out[i].EntityType < out[j].EntityType
		}
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].FieldName < out[j].FieldName
	})
	return out, nil
}

func (r *fakeCustomFieldRepo) Delete(userID, id string) error {
	for i, f := range r.fields {
		if f.UserID == userID && f.ID == id {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeContactRepo struct {
	contacts map[string]*entity.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*entity.Contact)}
}

func (r *fakeContactRepo) Create(contact *entity.Contact) error {
	cp := *contact
	r.contacts[contact.ID] = &cp
	return nil
}

func (r *fakeContactRepo) GetByID(userID, id string) (*entity.Contact, error) {
	c, ok := r.contacts[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContactRepo) ListByUser(userID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range r.contacts {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) Update(contact *entity.Contact) error {
	c, ok := r.contacts[contact.ID]
	if !ok || c.UserID != contact.UserID {
		return domain.ErrNotFound
	}
	cp := *contact
	r.contacts[contact.ID] = &cp
	return nil
}

func (r *fakeContactRepo) Delete(userID, id string) error {
	c, ok := r.contacts[id]
	if !ok || c.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(userID, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(company *entity.Company) error {
	c, ok := r.companies[company.ID]
	if !ok || c.UserID != company.UserID {
		return domain.ErrNotFound
	}
	cp := *company
	r.companies[company.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(userID, id string) error {
	c, ok := r.companies[id]
	if !ok || c.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

type fakeDealRepo struct {
	deals map[string]*entity.Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{deals: make(map[string]*entity.Deal)}
}

func (r *fakeDealRepo) Create(deal *entity.Deal) error {
	cp := *deal
	r.deals[deal.ID] = &cp
	return nil
}

func (r *fakeDealRepo) GetByID(userID, id string) (*entity.Deal, error) {
	d, ok := r.deals[id]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDealRepo) ListByUser(userID string) ([]*entity.Deal, error) {
	var out []*entity.Deal
	for _, d := range r.deals {
		if d.UserID == userID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDealRepo) Update(deal *entity.Deal) error {
	d, ok := r.deals[deal.ID]
	if !ok || d.UserID != deal.UserID {
		return domain.ErrNotFound
	}
	cp := *deal
	r.deals[deal.ID] = &cp
	return nil
}

func (r *fakeDealRepo) Delete(userID, id string) error {
	d, ok := r.deals[id]
	if !ok || d.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.deals, id)
	return nil
}
