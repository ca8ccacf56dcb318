package formatting

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const MissingAmount = "$---"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var printer = message.NewPrinter(language.English)

// Currency renders an amount of cents as $#,##0.00. A nil amount renders as MissingAmount.
func Currency(cents *int64) string {
	if cents == nil {
		return MissingAmount
	}

	amount := *cents
	magnitude := uint64(amount)
	if amount < 0 {
		magnitude = uint64(-(amount + 1)) + 1
	}

	whole := printer.Sprintf("%d", magnitude/100)
	formatted := fmt.Sprintf("$%s.%02d", whole, magnitude%100)
	if amount < 0 {
		return "-" + formatted
	}

	return formatted
}

// Day returns the two digit day of month of timestamp parsed with layout.
func Day(timestamp string, layout string) (string, error) {
	t, err := parse(timestamp, layout)
	if err != nil {
		return "", err
	}

	return t.Format("02"), nil
}

// Month returns the abbreviated month name of timestamp parsed with layout.
func Month(timestamp string, layout string) (string, error) {
	t, err := parse(timestamp, layout)
	if err != nil {
		return "", err
	}

	return t.Format("Jan"), nil
}

// No timezone conversion, the wall clock of the input is kept.
func parse(timestamp string, layout string) (time.Time, error) {
	t, err := time.Parse(layout, timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTimestamp, err.Error())
	}

	return t, nil
}
