package main

import "github.com/bomberosvinadelmar/portal-admin/cmd"

func main() {
	cmd.Execute()
}
