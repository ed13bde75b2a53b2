package system

import (
	"fmt"
	"log"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit; concat runs open one input
// per segment and long narrations produce many segments.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not raise file limit: %v", err)
	}
}

// EncodeThreads picks an ffmpeg thread count from the host's logical CPU
// count, capped so the encoder does not starve the rest of the machine.
func EncodeThreads() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return 2
	}
	if count > 8 {
		return 8
	}
	return count
}

// WarnLowMemory prints an advisory when available RAM looks too tight for
// raw-frame piping at the given frame size.
func WarnLowMemory(frameW, frameH int) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	// Raw RGBA frames at 2x oversampling plus encoder working set.
	needed := uint64(frameW) * uint64(frameH) * 4 * 16
	if vm.Available < needed || vm.Available < 512<<20 {
		fmt.Printf("[!] Low memory: %d MB available, rendering may thrash\n", vm.Available>>20)
	}
}
