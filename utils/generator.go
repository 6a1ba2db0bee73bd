package utils

import (
	"math/rand"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"gorm.io/gorm"
)

const pnrCodeLength = 6
const letterBytes = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GeneratePNR returns a unique passenger name record code of the form
// "PNR-5K8W2T". Ambiguous characters (0/O, 1/I) are left out of the charset.
func GeneratePNR(db *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, pnrCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		pnr := "PNR-" + string(b)

		var booking models.Booking
		err := db.Where("pnr = ?", pnr).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return pnr, nil
			}
			return "", err
		}
	}
}
