// File: utils/constants.go
package utils

import "time"

// BookingSessionPrefix is the prefix used for Redis booking-session keys.
const BookingSessionPrefix = "bsession:"

// BookingSessionTTL is how long a quoted session stays redeemable. The quote
// inside is non-binding either way; confirmation always reprices.
const BookingSessionTTL = 30 * time.Minute

// AvailabilityCachePrefix is the prefix for cached calendar-feed responses.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL keeps the calendar feed cheap to render. Short on
// purpose: the feed is never authoritative, only the commit transaction is.
const AvailabilityCacheTTL = 1 * time.Minute
