package notify

import (
	"fmt"
	"math/rand/v2"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// confirmationCode produces a short uppercase alphanumeric code. Codes are
// cosmetic: they are neither persisted nor checked for collisions, so they
// must not be used as identifiers.
func confirmationCode(length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(code)
}

// BookingConfirmation builds the SMS text sent after a mokhtar booking,
// embedding a fresh 9-character booking code.
func BookingConfirmation(name, date string) string {
	return fmt.Sprintf("حجز مؤكد مع المحضر %s في %s - رقم الحجز: %s", name, date, confirmationCode(9))
}

// DocumentReady builds the SMS text sent when a generated document is ready
// for download, embedding a fresh 6-character download code.
func DocumentReady(documentType string) string {
	return fmt.Sprintf("وثيقتك جاهزة للتحميل. نوع الوثيقة: %s - كود التحميل: %s", documentType, confirmationCode(6))
}
