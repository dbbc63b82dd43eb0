// Command waypath plans an obstacle-aware tour from a YAML scenario file
// and emits it in one of several formats:
//
//	waypath -scenario mission.yaml                      # text summary
//	waypath -scenario mission.yaml -format grid
//	waypath -scenario mission.yaml -format geojson -out route.geojson
//	waypath -scenario mission.yaml -format svg -out route.svg
//	waypath -scenario mission.yaml -format png -out route.png
//	waypath -scenario mission.yaml -publish -broker tcp://localhost:1883
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/katalvlaran/waypath/report"
	"github.com/katalvlaran/waypath/route"
	"github.com/katalvlaran/waypath/scenario"
)

var (
	scenarioFile = flag.String("scenario", "scenario.yaml", "Path to the YAML scenario file")
	format       = flag.String("format", "text", "Output format: text, grid, geojson, svg, or png")
	outFile      = flag.String("out", "", "Output file (default: stdout; required for png)")
	gridCols     = flag.Int("grid-cols", 72, "Grid columns for -format grid")
	gridRows     = flag.Int("grid-rows", 24, "Grid rows for -format grid")
	simplifyTol  = flag.Float64("simplify", 0, "Douglas-Peucker tolerance for GeoJSON export (0 disables)")

	publish = flag.Bool("publish", false, "Publish the planned route over MQTT")
	broker  = flag.String("broker", "tcp://localhost:1883", "MQTT broker URL for -publish")
	topic   = flag.String("topic", report.DefaultTopic, "MQTT topic for -publish")
)

func main() {
	flag.Parse()

	s, err := scenario.Load(*scenarioFile)
	if err != nil {
		log.Fatalf("loading scenario: %v", err)
	}

	field := s.Field()
	res, err := route.Plan(s.Points(), field, s.PlanOptions())
	if err != nil {
		log.Fatalf("planning %q: %v", s.Name, err)
	}
	for _, h := range res.Hazards {
		log.Printf("warning: leg %d clips obstacle %d (clearance %.3f)", h.Leg, h.Obstacle, h.Clearance)
	}

	out, closeOut, err := openOutput(*outFile)
	if err != nil {
		log.Fatalf("opening output: %v", err)
	}
	defer closeOut()

	switch *format {
	case "text":
		err = report.WriteText(out, res)
	case "grid":
		_, err = io.WriteString(out, report.GridString(res, field, *gridCols, *gridRows))
	case "geojson":
		var data []byte
		if data, err = report.MarshalGeoJSON(res, field, *simplifyTol); err == nil {
			_, err = out.Write(append(data, '\n'))
		}
	case "svg":
		err = report.NewRenderer().RenderSVG(out, res, field)
	case "png":
		if *outFile == "" {
			log.Fatal("-format png requires -out")
		}
		err = report.NewRenderer().RenderPNG(out, res, field)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("writing %s output: %v", *format, err)
	}

	if *publish {
		if err := publishRoute(s.Name, res); err != nil {
			log.Fatalf("publishing route: %v", err)
		}
		log.Printf("route %q published to %s", s.Name, *topic)
	}
}

// openOutput returns the destination writer and its cleanup function.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("closing %s: %v", path, err)
		}
	}, nil
}

// publishRoute connects to the broker, publishes the route, and disconnects.
func publishRoute(name string, res route.Route) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(*broker)
	opts.SetClientID(fmt.Sprintf("waypath-%d", os.Getpid()))
	opts.SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("connecting to %s: %w", *broker, err)
	}
	defer client.Disconnect(250)

	return report.NewPublisher(client, *topic).PublishRoute(name, res)
}
