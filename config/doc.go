// Package config loads process settings from the environment and replay
// scenarios from HCL files.
//
// Settings come from MICROMOUSE_* variables, optionally seeded from a .env file:
//
//	MICROMOUSE_MAX_TICKS   replay budget per run (default 1000)
//	MICROMOUSE_LOG_LEVEL   debug | info | warn | error (default info)
//	MICROMOUSE_LOG_FORMAT  text | json (default text)
//	MICROMOUSE_BOARDS_DIR  base directory for relative board paths (default ".")
//	MICROMOUSE_SEED        default seed for random drivers and generated boards
//
// A scenario file holds one or more run blocks. Each run names a board file or
// describes a generated maze, plus the driver and its policy knobs:
//
//	run "easy" {
//	  board    = "easy1.txt"
//	  driver   = driver.explorer
//	  heading  = heading.north
//	  reversal = reversal.counter_clockwise
//	}
//
//	run "wilson" {
//	  driver    = driver.right_hand
//	  max_ticks = 400
//	  generate {
//	    rows  = 8
//	    cols  = 8
//	    braid = 0.25
//	  }
//	}
//
// The driver, heading, reversal and order objects are predefined in the
// evaluation context; plain strings ("astar", "E") work as well.
package config
