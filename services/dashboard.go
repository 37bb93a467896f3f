package services

import (
	"fmt"
	"sort"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/utils"

	"github.com/shopspring/decimal"
)

const (
	dueSoonWindowDays = 7
	recentOrderCount  = 3
	topCustomerCount  = 4
)

type DashboardOverview struct {
	TotalCustomers  int                        `json:"totalCustomers"`
	TotalOrders     int                        `json:"totalOrders"`
	StatusCounts    map[models.OrderStatus]int `json:"statusCounts"`
	OutstandingDues decimal.Decimal            `json:"outstandingDues"`
	UnpaidOrders    int                        `json:"unpaidOrders"`
	MonthlyBookings decimal.Decimal            `json:"monthlyBookings"`
	DueSoon         []DueOrder                 `json:"dueSoon"`
	RecentOrders    []RecentOrder              `json:"recentOrders"`
}

type DueOrder struct {
	OrderID      string             `json:"orderId"`
	CustomerName string             `json:"customerName"`
	SuitType     models.SuitType    `json:"suitType"`
	Status       models.OrderStatus `json:"status"`
	DeliveryDate string             `json:"deliveryDate"`
	Due          string             `json:"due"` // "Today", "Tomorrow", "3 days"
}

type RecentOrder struct {
	OrderID      string             `json:"orderId"`
	CustomerName string             `json:"customerName"`
	SuitType     models.SuitType    `json:"suitType"`
	Status       models.OrderStatus `json:"status"`
	Booked       string             `json:"booked"` // "Today", "Yesterday", "5 days ago"
}

// BuildDashboard summarises the directory as of now.
func BuildDashboard(customers []models.Customer, orders []models.Order, now time.Time) DashboardOverview {
	byID := indexCustomers(customers)
	name := func(id string) string {
		if c, ok := byID[id]; ok {
			return c.Name
		}
		return UnknownCustomerName
	}

	d := DashboardOverview{
		TotalCustomers:  len(customers),
		TotalOrders:     len(orders),
		StatusCounts:    make(map[models.OrderStatus]int, len(models.OrderStatuses)),
		OutstandingDues: decimal.Zero,
		MonthlyBookings: decimal.Zero,
		DueSoon:         []DueOrder{},
		RecentOrders:    []RecentOrder{},
	}
	for _, s := range models.OrderStatuses {
		d.StatusCounts[s] = 0
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, o := range orders {
		d.StatusCounts[o.Status]++
		if o.Payment.Status == models.PaymentUnpaid {
			d.UnpaidOrders++
			d.OutstandingDues = d.OutstandingDues.Add(o.Payment.RemainingAmount)
		}
		if !o.CreatedAt.Before(firstOfMonth) {
			d.MonthlyBookings = d.MonthlyBookings.Add(o.Payment.StitchingPrice)
		}

		if o.Status == models.StatusDelivered {
			continue
		}
		due, err := utils.ParseISODate(o.Measurements.DeliveryDate, now.Location())
		if err != nil {
			continue
		}
		days := utils.DaysBetween(now, due)
		if days < 0 || days >= dueSoonWindowDays {
			continue
		}
		d.DueSoon = append(d.DueSoon, DueOrder{
			OrderID:      o.ID,
			CustomerName: name(o.CustomerID),
			SuitType:     o.Measurements.SuitType,
			Status:       o.Status,
			DeliveryDate: o.Measurements.DeliveryDate,
			Due:          dueLabel(days),
		})
	}
	sort.SliceStable(d.DueSoon, func(i, j int) bool {
		return d.DueSoon[i].DeliveryDate < d.DueSoon[j].DeliveryDate
	})

	recent := make([]models.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	for i := 0; i < len(recent) && i < recentOrderCount; i++ {
		o := recent[i]
		d.RecentOrders = append(d.RecentOrders, RecentOrder{
			OrderID:      o.ID,
			CustomerName: name(o.CustomerID),
			SuitType:     o.Measurements.SuitType,
			Status:       o.Status,
			Booked:       agoLabel(utils.DaysBetween(o.CreatedAt, now)),
		})
	}
	return d
}

func dueLabel(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func agoLabel(days int) string {
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

type Report struct {
	CurrentMonthBookings   decimal.Decimal   `json:"currentMonthBookings"`
	MonthGrowth            float64           `json:"monthGrowth"`
	CurrentQuarterBookings decimal.Decimal   `json:"currentQuarterBookings"`
	QuarterGrowth          float64           `json:"quarterGrowth"`
	CurrentYearBookings    decimal.Decimal   `json:"currentYearBookings"`
	YearGrowth             float64           `json:"yearGrowth"`
	AdvanceCollected       decimal.Decimal   `json:"advanceCollected"`
	TopCustomers           []CustomerSummary `json:"topCustomers"`
	TopSuitTypes           []SuitTypeSummary `json:"topSuitTypes"`
}

type CustomerSummary struct {
	CustomerID string          `json:"customerId"`
	Name       string          `json:"name"`
	Orders     int             `json:"orders"`
	Spent      decimal.Decimal `json:"spent"`
}

type SuitTypeSummary struct {
	SuitType models.SuitType `json:"suitType"`
	Count    int             `json:"count"`
}

// BuildReport compares booked stitching value for the current month,
// quarter and year against the previous period of the same length.
func BuildReport(customers []models.Customer, orders []models.Order, now time.Time) Report {
	loc := now.Location()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	quarterStart := QuarterStart(now)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)

	curMonth := bookedBetween(orders, firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
	prevMonth := bookedBetween(orders, firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	curQuarter := bookedBetween(orders, quarterStart, quarterStart.AddDate(0, 3, 0))
	prevQuarter := bookedBetween(orders, quarterStart.AddDate(0, -3, 0), quarterStart)
	curYear := bookedBetween(orders, yearStart, yearStart.AddDate(1, 0, 0))
	prevYear := bookedBetween(orders, yearStart.AddDate(-1, 0, 0), yearStart)

	r := Report{
		CurrentMonthBookings:   curMonth,
		MonthGrowth:            GrowthPercentage(curMonth, prevMonth),
		CurrentQuarterBookings: curQuarter,
		QuarterGrowth:          GrowthPercentage(curQuarter, prevQuarter),
		CurrentYearBookings:    curYear,
		YearGrowth:             GrowthPercentage(curYear, prevYear),
		AdvanceCollected:       decimal.Zero,
		TopCustomers:           []CustomerSummary{},
		TopSuitTypes:           []SuitTypeSummary{},
	}

	byID := indexCustomers(customers)
	spent := map[string]*CustomerSummary{}
	suits := map[models.SuitType]int{}
	for _, o := range orders {
		r.AdvanceCollected = r.AdvanceCollected.Add(o.Payment.AdvancePaid)
		if o.Measurements.SuitType != "" {
			suits[o.Measurements.SuitType]++
		}

		cs, ok := spent[o.CustomerID]
		if !ok {
			name := UnknownCustomerName
			if c, found := byID[o.CustomerID]; found {
				name = c.Name
			}
			cs = &CustomerSummary{CustomerID: o.CustomerID, Name: name, Spent: decimal.Zero}
			spent[o.CustomerID] = cs
		}
		cs.Orders++
		cs.Spent = cs.Spent.Add(o.Payment.StitchingPrice)
	}

	for _, cs := range spent {
		r.TopCustomers = append(r.TopCustomers, *cs)
	}
	sort.Slice(r.TopCustomers, func(i, j int) bool {
		a, b := r.TopCustomers[i], r.TopCustomers[j]
		if !a.Spent.Equal(b.Spent) {
			return a.Spent.GreaterThan(b.Spent)
		}
		return a.CustomerID < b.CustomerID
	})
	if len(r.TopCustomers) > topCustomerCount {
		r.TopCustomers = r.TopCustomers[:topCustomerCount]
	}

	for _, st := range models.SuitTypes {
		if n := suits[st]; n > 0 {
			r.TopSuitTypes = append(r.TopSuitTypes, SuitTypeSummary{SuitType: st, Count: n})
		}
	}
	sort.SliceStable(r.TopSuitTypes, func(i, j int) bool {
		return r.TopSuitTypes[i].Count > r.TopSuitTypes[j].Count
	})
	return r
}

func bookedBetween(orders []models.Order, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			total = total.Add(o.Payment.StitchingPrice)
		}
	}
	return total
}

func QuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

// GrowthPercentage is 100 when growing from nothing and 0 when both are zero.
func GrowthPercentage(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
