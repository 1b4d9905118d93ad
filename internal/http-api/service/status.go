package service

import (
	"time"

	"bookshelf/internal/http-api/models"
)

// DeriveStatus maps reading progress to a status. The stored status column is
// only ever written through this function, never taken from the client.
//
//	currentPage == 0         -> Unread
//	0 < currentPage < total  -> Reading
//	currentPage >= total     -> Finished
//
// A pageCount of 0 derives Finished immediately; upstream data with a zero
// page count is not guarded here.
func DeriveStatus(currentPage, pageCount int) string {
	if currentPage >= 1 && currentPage < pageCount {
		return models.StatusReading
	}
	if currentPage >= pageCount {
		return models.StatusFinished
	}
	return models.StatusUnread
}

// Library timestamps are normalized to a fixed civil timezone (WIB) and
// formatted as YYYY-MM-DD HH:mm:ss.
const addedAtLayout = "2006-01-02 15:04:05"

var jakarta = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

func addedAtNow() string {
	return time.Now().In(jakarta).Format(addedAtLayout)
}
