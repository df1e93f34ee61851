package calendar

import (
	"time"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// events is the hand-curated list of notable dates overlaid on the
// chart. It is reference data, not derived from the dataset or from
// any holiday calendar.
var events = []model.Event{
	{Date: date(2019, time.April, 3), Description: "Cherry Blossom Festival Peak"},
	{Date: date(2020, time.March, 22), Description: "COVID Lockdown Begins"},
	{Date: date(2020, time.November, 3), Description: "U.S. Presidential Election"},
	{Date: date(2021, time.January, 20), Description: "Presidential Inauguration"},
	{Date: date(2021, time.July, 4), Description: "Independence Day"},
	{Date: date(2022, time.January, 3), Description: "Winter Storm Impacts"},
	{Date: date(2023, time.November, 14), Description: "Political Event"},
	{Date: date(2024, time.October, 29), Description: "Pre-Election Event"},
}

// Events returns a copy of the static event list, sorted by date.
func Events() []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
