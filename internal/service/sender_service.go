package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(booking entities.BookingResponse, status string) {
	berlinLoc, errLoc := time.LoadLocation("Europe/Berlin")
	if errLoc != nil {
		berlinLoc = time.FixedZone("CET", 1*60*60) // fallback CET
	}

	dateFormatted := booking.BookingDate
	if d, err := time.Parse("2006-01-02", booking.BookingDate); err == nil {
		dateFormatted = d.Format("02 Jan 2006")
	}
	if booking.IsMultiDay && len(booking.BookingDates) > 1 {
		last := booking.BookingDates[len(booking.BookingDates)-1].Date
		if d, err := time.Parse("2006-01-02", last); err == nil {
			dateFormatted = fmt.Sprintf("%s – %s", dateFormatted, d.Format("02 Jan 2006"))
		}
	}

	emailData := entities.BookingEmailData{
		CustomerName:   booking.CustomerName,
		BookingCode:    booking.Code,
		ServiceTitle:   booking.ServiceTitle,
		ServiceAddress: booking.ServiceAddress,
		DateFormatted:  dateFormatted,
		TimeFormatted:  booking.BookingTime,
		TotalFormatted: fmt.Sprintf("%.2f EUR", booking.TotalAmount),
		CurrentYear:    time.Now().In(berlinLoc).Year(),
		Language:       booking.Language,
		Status:         status,
	}

	var emailSubject, plainTextBody string
	switch booking.Language {
	case "de":
		emailSubject = fmt.Sprintf("Deine Buchung bei Deep Cleaning Hub ist %s - Code: %s", status, emailData.BookingCode)
		plainTextBody = fmt.Sprintf(
			"Hallo %s,\n\nDeine Buchung bei Deep Cleaning Hub ist %s.\n\n"+
				"Buchungsdetails:\n"+
				"Buchungscode: %s\n"+
				"Leistung: %s\n"+
				"Adresse: %s\n"+
				"Termin: %s um %s\n"+
				"Gesamtbetrag: %s\n\n"+
				"Danke, dass du Deep Cleaning Hub gewählt hast.\n\n"+
				"Deep Cleaning Hub. Alle Rechte vorbehalten.",
			emailData.CustomerName, status, emailData.BookingCode, emailData.ServiceTitle,
			emailData.ServiceAddress, emailData.DateFormatted, emailData.TimeFormatted,
			emailData.TotalFormatted,
		)
	default:
		emailSubject = fmt.Sprintf("Your Deep Cleaning Hub booking is %s - Code: %s", status, emailData.BookingCode)
		plainTextBody = fmt.Sprintf(
			"Hello %s,\n\nYour booking at Deep Cleaning Hub is %s.\n\n"+
				"Booking Details:\n"+
				"Booking Code: %s\n"+
				"Service: %s\n"+
				"Address: %s\n"+
				"Scheduled: %s at %s\n"+
				"Total: %s\n\n"+
				"Thank you for choosing Deep Cleaning Hub.\n\n"+
				"Deep Cleaning Hub. All rights reserved.",
			emailData.CustomerName, status, emailData.BookingCode, emailData.ServiceTitle,
			emailData.ServiceAddress, emailData.DateFormatted, emailData.TimeFormatted,
			emailData.TotalFormatted,
		)
	}

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing HTML email template (%s): %v", tmplPath, err)
		return
	}

	var htmlBodyBuffer bytes.Buffer
	if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
		log.Printf("ALERT: Error executing HTML email template for booking %s: %v", emailData.BookingCode, err)
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, customerName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, customerName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): Email delivery failed for booking %s: %v", emailData.BookingCode, errEmail)
		}
	}(booking.CustomerEmail, emailData.CustomerName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendBookingSMS(booking entities.BookingResponse, status string) {
	if booking.CustomerPhone == "" {
		return
	}

	var smsMessage string
	switch booking.Language {
	case "de":
		smsMessage = fmt.Sprintf("Deep Cleaning Hub: Deine Buchung %s ist %s!\nTermin: %s um %s.\nMehr Details in deiner E-Mail.",
			booking.Code, status, booking.BookingDate, booking.BookingTime)
	default:
		smsMessage = fmt.Sprintf("Deep Cleaning Hub: Booking %s has been %s!\nScheduled: %s at %s.\nMore details in your email.",
			booking.Code, status, booking.BookingDate, booking.BookingTime)
	}

	errSMS := SendSMS(booking.CustomerPhone, smsMessage)
	if errSMS != nil {
		log.Printf("ALERT: Booking %s was saved, but the confirmation SMS to %s failed: %v", booking.Code, booking.CustomerPhone, errSMS)
	}
}
