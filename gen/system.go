package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// systemChecks are argless host-status intents.
var systemChecks = []struct {
	tool, trace string
	msgs        []string
}{
	{"system_cpu_usage", "Check CPU.", []string{"CPU usage", "Check CPU", "cpu stats", "processor usage", "how much cpu"}},
	{"system_memory", "Check memory.", []string{"Memory usage", "Check RAM", "memory stats", "how much memory", "ram usage"}},
	{"system_disk", "Check disk.", []string{"Disk space", "Check storage", "disk usage", "how much disk", "storage left"}},
	{"system_uptime", "Check uptime.", []string{"Uptime", "How long running", "system uptime", "server uptime"}},
	{"system_load", "Check load.", []string{"System load", "Load average", "server load", "check load"}},
}

var containerNames = []string{"luna-api", "redis", "postgres", "nginx", "memorycore", "frontend"}

var containerListQueries = []string{"Docker containers", "Running containers", "docker ps", "container status"}

func genSystem(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "system_cpu_usage", "system_memory", "system_disk",
		"system_uptime", "system_load", "docker_containers", "docker_logs", "docker_stats")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, check := range systemChecks {
		for _, msg := range check.msgs {
			out = append(out, corpus.New(msg, check.tool, map[string]any{}, tools, check.trace))
		}
	}
	for _, msg := range containerListQueries {
		args := map[string]any{"only_running": true}
		out = append(out, corpus.New(msg, "docker_containers", args, tools, "Docker containers."))
	}
	for _, c := range containerNames {
		args := map[string]any{"container_id": c}
		trace := fmt.Sprintf("Logs: %s", c)
		for _, msg := range []string{fmt.Sprintf("Logs for %s", c), fmt.Sprintf("docker logs %s", c), fmt.Sprintf("%s logs", c)} {
			out = append(out, corpus.New(msg, "docker_logs", args, tools, trace))
		}
	}
	for _, c := range containerNames[:3] {
		args := map[string]any{"container_id": c}
		msg := fmt.Sprintf("Stats for %s", c)
		out = append(out, corpus.New(msg, "docker_stats", args, tools, fmt.Sprintf("Stats: %s", c)))
	}
	return out, nil
}
