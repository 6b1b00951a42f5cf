package service

import (
	"context"
	"strings"

	"cinema_reservation/model"
	"cinema_reservation/repository"
	"cinema_reservation/utils"

	"gorm.io/gorm"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// Create registers a customer with canonical contact details. Both the
// guard pre-check and the commit-time unique indexes work on the
// canonical forms, so "0501234567" and "971 50 123 4567" collide.
func (s *CustomerService) Create(ctx context.Context, input *model.CreateCustomerInput) (*model.Customer, error) {
	customer := model.Customer{FullName: strings.TrimSpace(input.FullName)}

	if input.Phone != "" {
		phone, err := utils.NormalizePhone(input.Phone)
		if err != nil {
			return nil, err
		}
		customer.Phone = &phone
	}
	if email := utils.NormalizeEmail(input.Email); email != "" {
		customer.Email = &email
	}

	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := ensureContactFree(ctx, uow, customer.Phone, customer.Email, 0); err != nil {
		return nil, err
	}
	if err := uow.Customers.Add(ctx, &customer); err != nil {
		return nil, promote(err, ErrDuplicateContact)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrDuplicateContact)
	}
	return &customer, nil
}

// Update applies partial changes. A nil field is left alone, an empty
// string clears the contact field.
func (s *CustomerService) Update(ctx context.Context, id uint, input *model.UpdateCustomerInput) (*model.Customer, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	customer, err := uow.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		customer.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		if *input.Phone == "" {
			customer.Phone = nil
		} else {
			phone, err := utils.NormalizePhone(*input.Phone)
			if err != nil {
				return nil, err
			}
			customer.Phone = &phone
		}
	}
	if input.Email != nil {
		if email := utils.NormalizeEmail(*input.Email); email == "" {
			customer.Email = nil
		} else {
			customer.Email = &email
		}
	}

	if err := ensureContactFree(ctx, uow, customer.Phone, customer.Email, customer.ID); err != nil {
		return nil, err
	}
	if err := uow.Customers.Update(ctx, customer); err != nil {
		return nil, promote(err, ErrDuplicateContact)
	}
	if err := uow.Commit(); err != nil {
		return nil, promote(err, ErrDuplicateContact)
	}
	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	return repository.New[model.Customer, *model.Customer](s.db).GetByID(ctx, id)
}

// FindByPhone looks a customer up by any spelling of their number.
func (s *CustomerService) FindByPhone(ctx context.Context, raw string) (*model.Customer, error) {
	phone, err := utils.NormalizePhone(raw)
	if err != nil {
		return nil, err
	}
	return repository.New[model.Customer, *model.Customer](s.db).Find(ctx, "phone = ?", phone)
}

func (s *CustomerService) FindByEmail(ctx context.Context, raw string) (*model.Customer, error) {
	email := utils.NormalizeEmail(raw)
	return repository.New[model.Customer, *model.Customer](s.db).Find(ctx, "email = ?", email)
}

func (s *CustomerService) List(ctx context.Context, filter *model.FilterCustomer) (*model.ResponseCustom, error) {
	query := s.db.WithContext(ctx).Model(&model.Customer{})
	if filter.SearchKey != "" {
		key := "%" + strings.ToLower(filter.SearchKey) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR phone LIKE ? OR email LIKE ?", key, key, key)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var customers model.Customers
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)
	if err := query.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}

	return &model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uint) (bool, error) {
	uow, err := repository.Begin(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	found, err := uow.Customers.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return found, nil
}
