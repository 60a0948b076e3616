package model

// Monkey is one entry of the monkey reference table
type Monkey struct {
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Details    string  `json:"details"`
	Image      string  `json:"image"`
	Population int     `json:"population"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// MonkeyMatch pairs a monkey with the edit distance that selected it
type MonkeyMatch struct {
	Monkey   Monkey `json:"monkey"`
	Distance int    `json:"distance"`
}
