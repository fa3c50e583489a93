package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable EquipmentStatus = "available"
	EquipmentStatusPending   EquipmentStatus = "pending"
	EquipmentStatusRented    EquipmentStatus = "rented"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusPending, EquipmentStatusRented:
		return true
	}
	return false
}

type Equipment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    EquipmentStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
