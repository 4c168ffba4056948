package clientdata

import "time"

// Default TTLs per data type. Services take their TTL from config and fall
// back to these values.
const (
	TTLCompanyInfo = time.Hour        // Company overview rarely changes intraday
	TTLNews        = 15 * time.Minute // NewsAPI free tier allows 100 requests/day
	TTLHistory     = 5 * time.Minute
	TTLQuote       = time.Minute
)
