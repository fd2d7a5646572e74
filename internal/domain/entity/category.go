package entity

import "time"

// Category agrupa repuestos bajo un nombre único.
type Category struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}
