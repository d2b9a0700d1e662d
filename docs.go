// Package qweather is a client for the QWeather REST API. It covers city
// and grid weather, forecasts, minutely precipitation, weather warnings,
// life indices, air quality, storm tracking, and the GeoAPI city/POI
// lookup endpoints.
//
// Requests are authenticated with the public-id/private-key signature
// scheme: query parameters are canonicalised, hashed together with the
// private key, and sent as the "sign" parameter. The sign package holds the
// canonicalisation rules; the flex package holds the tolerant scalar types
// the provider's loosely typed JSON requires.
//
// # Quick Start
//
//	client := qweather.New(os.Getenv("QWEATHER_ID"), os.Getenv("QWEATHER_KEY"),
//	    qweather.WithLanguage("en"),
//	)
//
//	resp, err := client.WeatherNow(ctx, "101010100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Data.Now.Temp)
//
// Errors are typed: transport failures surface as *TransportError,
// non-"200" provider status codes as *ProviderError, malformed payloads as
// *DecodeError, and invalid arguments as *ValidationError. All four are
// matchable with errors.As.
package qweather
