// Command ternsim is the interactive front-end for the ternary gate-level
// circuit simulator: it prompts for a netlist file and a stimulus file,
// runs the simulation to its traced horizon, and prints the resulting
// timing diagram. It persists no state between invocations and exits 0
// on success, 1 on any parse, structural, or I/O error, with a
// human-readable message on standard output.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/ternsim/circuit"
	"github.com/katalvlaran/ternsim/parse"
	"github.com/katalvlaran/ternsim/render"
	"github.com/katalvlaran/ternsim/validate"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "circuit file name (without .txt): ")
	circuitName, err := readLine(scanner)
	if err != nil {
		return fmt.Errorf("ternsim: %w", err)
	}

	fmt.Fprintf(out, "stimulus file name (without .txt, default %s_v.txt): ", circuitName)
	stimName, err := readLine(scanner)
	if err != nil {
		return fmt.Errorf("ternsim: %w", err)
	}
	if stimName == "" {
		stimName = circuitName + "_v"
	}

	c, vec, err := build(circuitName+".txt", stimName+".txt")
	if err != nil {
		return err
	}

	horizon, err := c.Trace()
	if err != nil {
		return fmt.Errorf("ternsim: %w", err)
	}
	if err := c.Run(context.Background(), horizon); err != nil {
		return fmt.Errorf("ternsim: %w", err)
	}

	fmt.Fprint(out, render.Diagram(vec, c.LogicalTime()+1))

	return nil
}

// build parses the netlist and stimulus files and validates the resulting
// circuit is acyclic before simulation is attempted.
func build(netlistPath, stimPath string) (*circuit.Circuit, *circuit.Vector, error) {
	nf, err := os.Open(netlistPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ternsim: %w", err)
	}
	defer nf.Close()

	c, err := parse.Netlist(nf)
	if err != nil {
		return nil, nil, fmt.Errorf("ternsim: %w", err)
	}

	sf, err := os.Open(stimPath)
	if err != nil {
		return nil, nil, fmt.Errorf("ternsim: %w", err)
	}
	defer sf.Close()

	vec, err := parse.Stimulus(sf, c)
	if err != nil {
		return nil, nil, fmt.Errorf("ternsim: %w", err)
	}
	c.AttachVector(vec)

	if err := validate.CheckAcyclic(c); err != nil {
		return nil, nil, fmt.Errorf("ternsim: %w", err)
	}

	return c, vec, nil
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}

		return "", nil
	}

	return strings.TrimSpace(scanner.Text()), nil
}
