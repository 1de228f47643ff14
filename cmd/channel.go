/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"

	"github.com/notargets/gocean/InputParameters"
	"github.com/notargets/gocean/model_problems/Channel2D"

	"github.com/spf13/cobra"
)

type ModelChannel struct {
	ICFile    string
	ProcLimit int
	Profile   bool
}

// ChannelCmd represents the channel command
var ChannelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Periodic channel flow around an immersed rectangular obstacle",
	Long: `
Advects a passive tracer through a steady divergence free flow in a
doubly periodic channel containing a rectangular solid obstacle, using
the masked staggered grid operators, and reports the momentum tendencies
of the configured advection scheme,

gocean channel `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("channel called")
		mc := &ModelChannel{}
		if mc.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mc.ProcLimit, _ = cmd.Flags().GetInt("procLimit")
		mc.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processChannelInput(mc)
		RunChannel(mc, ip)
	},
}

func processChannelInput(mc *ModelChannel) (ip *InputParameters.InputParametersChannel) {
	var (
		err error
	)
	if len(mc.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Channel With Obstacle"
CFL: 0.5
FinalTime: 10.
Nx: 64
Ny: 64
Nz: 1
Lx: 1.
Ly: 1.
Lz: 1.
Scheme: upwind # Can be "vectorinvariant", "fluxform", "none"
Order: 3
Stencil: vorticity # Can be "velocity"
ObstacleXMin: 0.4
ObstacleXMax: 0.6
ObstacleYMin: 0.4
ObstacleYMax: 0.6
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mc.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersChannel{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(ChannelCmd)
	ChannelCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- grid dimensions\n\t- advection scheme")
	ChannelCmd.Flags().IntP("procLimit", "p", 0, "limit the number of parallel go routines, 0 uses the input file / NumCPU")
	ChannelCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func RunChannel(mc *ModelChannel, ip *InputParameters.InputParametersChannel) {
	if mc.Profile {
		defer profile.Start().Stop()
	}
	c := Channel2D.NewChannel(ip, mc.ProcLimit, true)
	c.Run(true)
	cmin, cmax, cmean := c.TracerStats()
	fmt.Printf("Tracer min, max, mean = %8.5f, %8.5f, %8.5f\n", cmin, cmax, cmean)
	fmt.Printf("Net divergence = %10.3e\n", c.DivergenceSum())
}
