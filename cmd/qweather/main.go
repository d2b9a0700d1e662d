// Command qweather prints the current weather for a location.
//
// Credentials come from the QWEATHER_ID and QWEATHER_KEY environment
// variables, optionally loaded from a .env file in the working directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	qweather "github.com/foxzool/qweather-sdk"
)

func main() {
	location := flag.String("location", "101010100", "LocationID or lon,lat coordinate pair")
	lang := flag.String("lang", "", "response language, e.g. en or zh")
	subscription := flag.Bool("subscription", false, "use the subscription host")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	// A missing .env file is fine; the variables may come from the
	// environment directly.
	_ = godotenv.Load()

	publicID := os.Getenv("QWEATHER_ID")
	privateKey := os.Getenv("QWEATHER_KEY")
	if publicID == "" || privateKey == "" {
		fmt.Fprintln(os.Stderr, "QWEATHER_ID and QWEATHER_KEY must be set")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []qweather.Option{
		qweather.WithLogger(logger),
		qweather.WithTimeout(15 * time.Second),
	}
	if *lang != "" {
		opts = append(opts, qweather.WithLanguage(*lang))
	}
	if *subscription {
		opts = append(opts, qweather.WithSubscription())
	}
	client := qweather.New(publicID, privateKey, opts...)

	resp, err := client.WeatherNow(context.Background(), *location)
	if err != nil {
		logger.Error("weather lookup failed", "location", *location, "error", err)
		os.Exit(1)
	}

	now := resp.Data.Now
	fmt.Printf("%s  %v°  %s\n", *location, now.Temp.Float64(), now.Text)
	fmt.Printf("feels like %v°, humidity %v%%, wind %s %v km/h\n",
		now.FeelsLike.Float64(), now.Humidity.Float64(), now.WindDir, now.WindSpeed.Float64())
	if resp.UpdateTime.Valid {
		fmt.Printf("updated %s\n", resp.UpdateTime.Time.Format(time.RFC3339))
	}
}
