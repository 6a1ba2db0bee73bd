package services

import "github.com/Abdul-Mateen-1/Railway-Management-System/models"

// DefaultBaseFare applies to any train type outside the fare table.
const DefaultBaseFare = 2500

// BaseFare returns the per-seat fare in PKR for a train type. Pricing is a
// static lookup; seat class has no effect on the amount.
func BaseFare(trainType string) int {
	switch trainType {
	case models.TrainTypeExpress:
		return 3500
	case models.TrainTypePassenger:
		return 2200
	case models.TrainTypeFreight:
		return 1500
	default:
		return DefaultBaseFare
	}
}
