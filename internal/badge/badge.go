// Package badge maps log levels, lifecycle statuses and resource kinds to
// Tailwind class lists used by console badges.
package badge

import (
	"strings"

	"github.com/samber/lo"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

type levelClass int

const (
	levelInfo levelClass = iota
	levelWarn
	levelError
)

func classifyLevel(level string) levelClass {
	switch strings.ToLower(level) {
	case "error":
		return levelError
	case "warn", "warning":
		return levelWarn
	default:
		return levelInfo
	}
}

// LevelBadgeClass returns background and text classes for a log level.
// Matching is case-insensitive; unknown levels are shown as info.
func LevelBadgeClass(level string) string {
	switch classifyLevel(level) {
	case levelError:
		return "bg-red-500/10 text-red-400"
	case levelWarn:
		return "bg-yellow-500/10 text-yellow-400"
	default:
		return "bg-blue-500/10 text-blue-400"
	}
}

// LevelColorClasses is LevelBadgeClass with a matching border.
func LevelColorClasses(level string) string {
	switch classifyLevel(level) {
	case levelError:
		return "bg-red-500/10 text-red-400 border border-red-500/20"
	case levelWarn:
		return "bg-yellow-500/10 text-yellow-400 border border-yellow-500/20"
	default:
		return "bg-blue-500/10 text-blue-400 border border-blue-500/20"
	}
}

// LevelSolidBadgeClass returns a solid fill for a log level.
func LevelSolidBadgeClass(level string) string {
	switch classifyLevel(level) {
	case levelError:
		return "bg-red-600 text-white"
	case levelWarn:
		return "bg-yellow-500 text-white"
	default:
		return "bg-blue-600 text-white"
	}
}

const pendingStatusClass = "bg-yellow-500/10 text-yellow-400"

// Keys are matched exactly; "running" is not "Running".
var statusClasses = map[string]string{
	"Running":   "bg-blue-500/10 text-blue-400",
	"Succeeded": "bg-green-500/10 text-green-400",
	"Failed":    "bg-red-500/10 text-red-400",
	"Archived":  "bg-slate-500/10 text-slate-400",
}

// StatusBadgeClass returns the classes for a lifecycle status. Anything outside
// Running, Succeeded, Failed and Archived is rendered as pending.
func StatusBadgeClass(status string) string {
	return lo.ValueOr(statusClasses, status, pendingStatusClass)
}

const defaultResourceClass = "bg-slate-500/10 text-slate-400"

var resourceClasses = map[string]string{
	"VirtualMachine":         "bg-purple-500/10 text-purple-400",
	"VirtualMachineInstance": "bg-violet-500/10 text-violet-400",
	"Pod":                    "bg-green-500/10 text-green-400",
	"Deployment":             "bg-blue-500/10 text-blue-400",
	"StatefulSet":            "bg-indigo-500/10 text-indigo-400",
	"DaemonSet":              "bg-sky-500/10 text-sky-400",
	"ReplicaSet":             "bg-cyan-500/10 text-cyan-400",
	"Job":                    "bg-orange-500/10 text-orange-400",
	"CronJob":                "bg-amber-500/10 text-amber-400",
	"Service":                "bg-teal-500/10 text-teal-400",
	"Ingress":                "bg-pink-500/10 text-pink-400",
	"PersistentVolumeClaim":  "bg-lime-500/10 text-lime-400",
	"ConfigMap":              "bg-emerald-500/10 text-emerald-400",
	"Secret":                 "bg-rose-500/10 text-rose-400",
	"Node":                   "bg-fuchsia-500/10 text-fuchsia-400",
}

// ResourceColorClass returns the colour classes for a resource kind.
func ResourceColorClass(resourceType string) string {
	return lo.ValueOr(resourceClasses, resourceType, defaultResourceClass)
}

// ResourceColorClassFor looks up the kind carried by a Kubernetes object.
func ResourceColorClassFor(obj schema.ObjectKind) string {
	if obj == nil {
		return defaultResourceClass
	}
	return ResourceColorClass(obj.GroupVersionKind().Kind)
}
