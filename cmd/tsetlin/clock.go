package main

import "time"

import "github.com/beevik/ntp"

// now gets the time from server, or the local clock when server is empty or unreachable
func now(server string) time.Time {
	if server == "" {
		return time.Now()
	}
	t, err := ntp.Time(server)
	if err != nil {
		println("failed to get time from NTP server:", err.Error())
		return time.Now()
	}
	return t
}
