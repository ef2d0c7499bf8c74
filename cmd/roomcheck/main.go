// roomcheck validates a world file and its rooms without starting the game:
// spawn placement, room adjacency, and tile grid consistency.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hollowpine/grapple/obj"
)

func main() {
	var strict bool

	root := &cobra.Command{
		Use:   "roomcheck <world.json>",
		Short: "Validate a world file and its rooms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := obj.LoadWorld(args[0])
			if err != nil {
				return err
			}
			problems := check(world)
			if problems > 0 {
				log.Warn("validation finished with problems", "count", problems)
				if strict {
					return fmt.Errorf("%d problem(s) found", problems)
				}
				return nil
			}
			log.Info("world is valid", "rooms", len(world.Rooms))
			return nil
		},
	}
	root.Flags().BoolVar(&strict, "strict", false, "exit non-zero when problems are found")
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func check(world *obj.World) int {
	problems := 0
	for _, room := range world.Rooms {
		if !room.Bounds.Contains(room.Spawn.X, room.Spawn.Y) {
			log.Warn("spawn point outside room bounds", "room", room.ID)
			problems++
		}
		if room.SolidAtPoint(room.Spawn.X, room.Spawn.Y) {
			log.Warn("spawn point inside a solid tile", "room", room.ID)
			problems++
		}
		if len(room.Adjacent) == 0 && len(world.Rooms) > 1 {
			log.Warn("room shares no boundary with any other room", "room", room.ID)
			problems++
		}
	}
	return problems
}
