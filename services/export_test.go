package services

import "time"

func SetReminderClock(s *ReminderService, now func() time.Time) { s.now = now }

func SetOrderClock(s *OrderService, now func() time.Time) { s.now = now }
