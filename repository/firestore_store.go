package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"digitaltailor-backend/models"

	gfs "cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps customers and orders in Firestore so other
// connected clients see changes live.
type FirestoreStore struct {
	Client *gfs.Client
	now    func() time.Time
}

func NewFirestoreStore(client *gfs.Client) *FirestoreStore {
	return &FirestoreStore{Client: client, now: time.Now}
}

var _ DirectoryStore = (*FirestoreStore)(nil)

func (r *FirestoreStore) customersCol() *gfs.CollectionRef {
	return r.Client.Collection("customers")
}

func (r *FirestoreStore) ordersCol() *gfs.CollectionRef {
	return r.Client.Collection("orders")
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// docIterator is the part of *gfs.DocumentIterator the list helpers use.
type docIterator interface {
	Next() (*gfs.DocumentSnapshot, error)
	Stop()
}

// collectDocs drains it into a non-nil slice so an empty collection
// encodes as [] like the SQL store.
func collectDocs[T any](it docIterator, decode func(id string, data map[string]any) T) ([]T, error) {
	defer it.Stop()

	out := []T{}
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, decode(doc.Ref.ID, doc.Data()))
	}
}

func (r *FirestoreStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	out, err := collectDocs(r.customersCol().OrderBy("createdAt", gfs.Asc).Documents(ctx), decodeCustomerDoc)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return out, nil
}

func (r *FirestoreStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	out, err := collectDocs(r.ordersCol().OrderBy("createdAt", gfs.Asc).Documents(ctx), decodeOrderDoc)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (r *FirestoreStore) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Customer{}, ErrNotFound
	}
	snap, err := r.customersCol().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return decodeCustomerDoc(snap.Ref.ID, snap.Data()), nil
}

func (r *FirestoreStore) GetOrder(ctx context.Context, id string) (models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Order{}, ErrNotFound
	}
	snap, err := r.ordersCol().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("get order: %w", err)
	}
	return decodeOrderDoc(snap.Ref.ID, snap.Data()), nil
}

func (r *FirestoreStore) FindCustomerByMobile(ctx context.Context, mobile string) (models.Customer, error) {
	it := r.customersCol().Where("mobileNumber", "==", mobile).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return models.Customer{}, ErrNotFound
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("find customer by mobile: %w", err)
	}
	return decodeCustomerDoc(doc.Ref.ID, doc.Data()), nil
}

func (r *FirestoreStore) CreateCustomer(ctx context.Context, c models.Customer) (models.Customer, error) {
	ref := r.customersCol().NewDoc()
	c.ID = ref.ID
	now := r.now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if _, err := ref.Create(ctx, encodeCustomerDoc(c)); err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (r *FirestoreStore) UpdateCustomer(ctx context.Context, c models.Customer) error {
	return r.update(ctx, r.customersCol().Doc(c.ID), []gfs.Update{
		{Path: "name", Value: c.Name},
		{Path: "fatherName", Value: c.FatherName},
		{Path: "address", Value: c.Address},
		{Path: "mobileNumber", Value: c.MobileNumber},
		{Path: "cnic", Value: c.CNIC},
	})
}

func (r *FirestoreStore) SetCustomerProfilePicture(ctx context.Context, id, ref string) error {
	return r.update(ctx, r.customersCol().Doc(id), []gfs.Update{
		{Path: "profilePicture", Value: ref},
	})
}

func (r *FirestoreStore) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	ref := r.ordersCol().NewDoc()
	o.ID = ref.ID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = r.now().UTC()
	}
	o.UpdatedAt = o.CreatedAt
	if _, err := ref.Create(ctx, encodeOrderDoc(o)); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func (r *FirestoreStore) UpdateOrderStatus(ctx context.Context, id string, s models.OrderStatus) error {
	return r.update(ctx, r.ordersCol().Doc(id), []gfs.Update{
		{Path: "status", Value: string(s)},
	})
}

func (r *FirestoreStore) UpdateOrderMessages(ctx context.Context, id string, msgs []models.Message) error {
	return r.update(ctx, r.ordersCol().Doc(id), []gfs.Update{
		{Path: "messages", Value: encodeMessages(msgs)},
	})
}

func (r *FirestoreStore) UpdateOrderPhotos(ctx context.Context, id string, photos []string) error {
	return r.update(ctx, r.ordersCol().Doc(id), []gfs.Update{
		{Path: "photos", Value: encodePhotos(photos)},
	})
}

func (r *FirestoreStore) UpdateOrderPayment(ctx context.Context, id string, p models.PaymentDetails) error {
	return r.update(ctx, r.ordersCol().Doc(id), []gfs.Update{
		{Path: "payment", Value: encodePayment(p)},
	})
}

func (r *FirestoreStore) update(ctx context.Context, ref *gfs.DocumentRef, updates []gfs.Update) error {
	if strings.TrimSpace(ref.ID) == "" {
		return ErrNotFound
	}
	updates = append(updates, gfs.Update{Path: "updatedAt", Value: r.now().UTC()})
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update %s: %w", ref.Path, err)
	}
	return nil
}

// Listen calls onChange whenever the customers or orders collection changes,
// including writes made by other clients. The listeners stop with ctx.
func (r *FirestoreStore) Listen(ctx context.Context, logger *zap.Logger, onChange func()) {
	for _, col := range []*gfs.CollectionRef{r.customersCol(), r.ordersCol()} {
		go func(col *gfs.CollectionRef) {
			it := col.Snapshots(ctx)
			defer it.Stop()
			for {
				if _, err := it.Next(); err != nil {
					if ctx.Err() == nil && status.Code(err) != codes.Canceled {
						logger.Error("Firestore listener stopped",
							zap.String("collection", col.ID),
							zap.Error(err))
					}
					return
				}
				onChange()
			}
		}(col)
	}
}
