package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avdeyev/order_crm/internal/models"
)

// Store is the single persistence gateway for customers, products, orders and
// the order_products association rows. Order writes that touch association
// rows run inside one transaction.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Order("create_date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) OrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return s.DB.WithContext(ctx).Create(order).Error
}

// SaveOrder writes the order's scalar fields and, when syncProducts is set,
// replaces its association rows with the current order.Products set. Both
// writes commit together or not at all.
func (s *Store) SaveOrder(ctx context.Context, order *models.Order, syncProducts bool) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if syncProducts {
			if err := tx.Model(order).Association("Products").Replace(order.Products); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(order).Error
	})
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{ID: id}).Association("Products").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (s *Store) Customers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.WithContext(ctx).Order("create_date ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Store) CustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return s.DB.WithContext(ctx).Create(customer).Error
}

func (s *Store) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	return s.DB.WithContext(ctx).Omit(clause.Associations).Save(customer).Error
}

func (s *Store) DeleteCustomer(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// CustomerOrderCount reports how many orders reference the customer. Used to
// guard customer deletion.
func (s *Store) CustomerOrderCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", id).
		Count(&count).Error
	return count, err
}

func (s *Store) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.WithContext(ctx).Order("create_date ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductsByIDs resolves the whole id set with one query.
func (s *Store) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return s.DB.WithContext(ctx).Create(product).Error
}

func (s *Store) SaveProduct(ctx context.Context, product *models.Product) error {
	return s.DB.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

// DeleteProduct drops the product together with its association rows; orders
// that referenced it keep their remaining products.
func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{ID: id}).Association("Orders").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return s.DB.WithContext(ctx).Create(user).Error
}
