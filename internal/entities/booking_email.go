package entities

type BookingEmailData struct {
	UserName    string
	BookingID   string
	SpotNumber  string
	Location    string
	Date        string
	StartTime   string
	EndTime     string
	Status      string
	CurrentYear int
}
