package entities

type BookingEmailData struct {
	CustomerName   string
	BookingCode    string
	ServiceTitle   string
	ServiceAddress string
	DateFormatted  string
	TimeFormatted  string
	TotalFormatted string
	CurrentYear    int
	Language       string
	Status         string
}
