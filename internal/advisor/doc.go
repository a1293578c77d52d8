// Package advisor provides the HTTP client and data model for the
// Agri-Advisor backend.
//
// The backend exposes a single endpoint that accepts a free-text location
// and an agricultural question, looks up the current weather for that
// location and returns AI-generated advice alongside the weather snapshot
// and the resolved coordinates.
//
// # Request / Response
//
//	POST {base}/api/ask
//	{"location": "Jaipur, India", "query": "Best crop for monsoon season"}
//
//	200 OK
//	{
//	  "response": "...",
//	  "weather": {"temperature": 32, "condition": "Sunny", "humidity": 45,
//	              "windSpeed": 12, "feelsLike": 35, "uvIndex": 8},
//	  "coordinates": {"lat": 26.9124, "lon": 75.7873},
//	  "location": "Jaipur, India"
//	}
//
//	4xx/5xx
//	{"error": "Could not find location"}
//
// # Usage Example
//
//	client := advisor.NewClient("http://localhost:5000")
//
//	input, err := advisor.NewQueryInput("Jaipur, India", "Best crop for monsoon season")
//	if err != nil {
//	    fmt.Println(advisor.UserMessage(err))
//	    return
//	}
//
//	result, err := client.Ask(ctx, input)
//	if err != nil {
//	    fmt.Println(advisor.UserMessage(err))
//	    return
//	}
//	fmt.Println(result.FormatCompact())
//
// # Error Handling
//
// Every failure returned by the client is a *QueryError carrying one of
// five categories: validation, timeout, connection, application (the
// backend sent an "error" message) and unknown. UserMessage maps any error
// to the single sentence shown to the user.
//
// # Timeouts and Retries
//
// Each request is bounded by DefaultTimeout (30 seconds). The client never
// retries: exactly one HTTP request is issued per call to Ask.
package advisor
