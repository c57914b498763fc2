package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ohowland/pvnet/internal/pkg/network"
)

type rating struct {
	name  string
	amps  float64
	volts float64
}

var ratings = []rating{
	{"kc50t", 3.11, 17.4},
	{"sun100", 5.44, 18.4},
	{"newpowa220", 12.6, 17.52},
}

// report is a single line of output. Volts are printed only when showVolts is set.
// Labels follow the bench sheet verbatim, so the 4x kc50t
// series string is reported as "4P" and the parallel one as "4S".
type report struct {
	label     string
	node      string
	showVolts bool
}

var reports = []report{
	{"one kc50t", "kc50t", false},
	{"4P kc50t", "4S kc50t", false},
	{"2P sun100", "2P sun100", false},
	{"4S kc50t", "4P kc50t", false},
	{"4S NewPowa 220", "4S newpowa220", false},
	{"4S newpowas and 4P KC50T string", "4S newpowa220 + 4P kc50t", false},
	{"4S newpowas and 2P SUN100 string", "4S newpowa220 + 2P sun100", false},
	{"serial sun100 and kc50t", "1S sun100 + 1S kc50t", true},
	{"2x (1 sun100 and 2p kc50t)", "2x (sun100 + 2P kc50t)", true},
}

func main() {
	log.Println("[Main] Starting pvnet")

	log.Println("[Main] Building Network")
	n, err := network.NewWithConfig(network.Config{Static: network.StaticConfig{Name: "demo"}})
	if err != nil {
		log.Fatal(err)
	}

	log.Println("[Main] Building Panels")
	if err := buildPanels(&n); err != nil {
		log.Fatal(err)
	}

	log.Println("[Main] Building Strings")
	if err := buildStrings(&n); err != nil {
		log.Fatal(err)
	}

	if err := writeReports(os.Stdout, n); err != nil {
		log.Fatal(err)
	}

	log.Println("[Main] Done")
}

func buildPanels(n *network.Network) error {
	for _, r := range ratings {
		if _, err := n.AddPanel(r.name, r.amps, r.volts); err != nil {
			return err
		}
	}
	return nil
}

func buildStrings(n *network.Network) error {
	kc50t, err := lookup(*n, "kc50t")
	if err != nil {
		return err
	}
	sun100, err := lookup(*n, "sun100")
	if err != nil {
		return err
	}
	newpowa220, err := lookup(*n, "newpowa220")
	if err != nil {
		return err
	}

	if _, err := n.AddSeries("4S kc50t", kc50t, kc50t, kc50t, kc50t); err != nil {
		return err
	}
	fourPKC50T, err := n.AddParallel("4P kc50t", kc50t, kc50t, kc50t, kc50t)
	if err != nil {
		return err
	}
	twoPSun100, err := n.AddParallel("2P sun100", sun100, sun100)
	if err != nil {
		return err
	}
	fourSNewpowa, err := n.AddSeries("4S newpowa220", newpowa220, newpowa220, newpowa220, newpowa220)
	if err != nil {
		return err
	}

	if _, err := n.AddSeries("4S newpowa220 + 4P kc50t", fourPKC50T, fourSNewpowa); err != nil {
		return err
	}
	if _, err := n.AddSeries("4S newpowa220 + 2P sun100", twoPSun100, fourSNewpowa); err != nil {
		return err
	}
	if _, err := n.AddSeries("1S sun100 + 1S kc50t", kc50t, sun100); err != nil {
		return err
	}

	twoPKC50T, err := n.AddParallel("2P kc50t", kc50t, kc50t)
	if err != nil {
		return err
	}
	half, err := n.AddSeries("sun100 + 2P kc50t", sun100, twoPKC50T)
	if err != nil {
		return err
	}
	_, err = n.AddSeries("2x (sun100 + 2P kc50t)", half, half)
	return err
}

func writeReports(w io.Writer, n network.Network) error {
	for _, r := range reports {
		pid, err := lookup(n, r.node)
		if err != nil {
			return err
		}

		watts, err := n.Power(pid)
		if err != nil {
			return err
		}

		if !r.showVolts {
			fmt.Fprintf(w, "%s = %f watts\n", r.label, watts)
			continue
		}

		volts, err := n.Voltage(pid)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s = %f volts, %f watts\n", r.label, volts, watts)
	}
	return nil
}

func lookup(n network.Network, name string) (uuid.UUID, error) {
	pid, ok := n.Lookup(name)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("no node named %q", name)
	}
	return pid, nil
}
