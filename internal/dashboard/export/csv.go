package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteTrendCSV emits one row per projected point of every card.
func WriteTrendCSV(w io.Writer, cards []CardTrend) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Card", "Month", "Value", "Change", "Projected"}); err != nil {
		return err
	}
	for _, card := range cards {
		for _, point := range card.Points {
			if err := writer.Write([]string{
				card.Title,
				point.Month,
				formatFloat(point.Value),
				point.Change,
				strconv.FormatBool(card.Available),
			}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV emits the headline value and growth of every card.
func WriteSummaryCSV(w io.Writer, cards []CardTrend) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"Card", "Value", "Growth"}); err != nil {
		return err
	}
	for _, card := range cards {
		if err := writer.Write([]string{card.Title, card.Value, card.Growth}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
