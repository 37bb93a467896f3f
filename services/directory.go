package services

import (
	"strings"

	"digitaltailor-backend/models"
)

// UnknownCustomerName is shown for orders whose customer is not in the
// snapshot (deleted, or the order arrived first).
const UnknownCustomerName = "Unknown"

// FilterCustomers matches term against name and father name ignoring case,
// and against the raw mobile number. A blank term returns customers as is;
// any other term is matched as given, surrounding spaces included.
func FilterCustomers(customers []models.Customer, term string) []models.Customer {
	if strings.TrimSpace(term) == "" {
		return customers
	}
	lower := strings.ToLower(term)

	out := []models.Customer{}
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.MobileNumber, term) ||
			strings.Contains(strings.ToLower(c.FatherName), lower) {
			out = append(out, c)
		}
	}
	return out
}

// FilterOrders matches term against the order id and the linked customer's
// name, both ignoring case. Orders with no matching customer can still be
// found by id.
func FilterOrders(orders []models.Order, customers []models.Customer, term string) []models.Order {
	if strings.TrimSpace(term) == "" {
		return orders
	}
	lower := strings.ToLower(term)
	byID := indexCustomers(customers)

	out := []models.Order{}
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ID), lower) {
			out = append(out, o)
			continue
		}
		if c, ok := byID[o.CustomerID]; ok && strings.Contains(strings.ToLower(c.Name), lower) {
			out = append(out, o)
		}
	}
	return out
}

// CustomerDisplayName resolves an order's customer name.
func CustomerDisplayName(customers []models.Customer, customerID string) string {
	for _, c := range customers {
		if c.ID == customerID {
			return c.Name
		}
	}
	return UnknownCustomerName
}

// OrderView is an order together with its resolved customer name.
type OrderView struct {
	models.Order
	CustomerName string `json:"customerName"`
}

func ViewOrders(orders []models.Order, customers []models.Customer) []OrderView {
	byID := indexCustomers(customers)
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		name := UnknownCustomerName
		if c, ok := byID[o.CustomerID]; ok {
			name = c.Name
		}
		out = append(out, OrderView{Order: o, CustomerName: name})
	}
	return out
}

// OrdersForCustomer keeps the orders owned by one customer, in input order.
func OrdersForCustomer(orders []models.Order, customerID string) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func indexCustomers(customers []models.Customer) map[string]models.Customer {
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}
	return byID
}
