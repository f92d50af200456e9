package main

import "task-time-tracker.com/task-time-tracker/cmd"

func main() {
	cmd.Execute()
}
