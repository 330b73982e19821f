package model

import "time"

type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Material     string    `json:"material"`
	Price        int       `json:"price"`
	Stock        int       `json:"stock"`
	LeadTimeDays int       `json:"lead_time_days"`
	PhotoURL     string    `json:"photo_url"`
	STLURL       string    `json:"stl_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Materials offered by the admin forms. Stored material values are free text
// and need not be one of these.
var Materials = []string{"PLA", "PETG", "TPU", "ABS", "Diğer"}
