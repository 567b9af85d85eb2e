package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Inspects live rate-limit state. Keys look like rl:<route>:<ip>:<bucket>;
// each key is one fixed window, its value the hit count and its PTTL the
// time until that window resets.
type window struct {
	route string
	ip    string
	hits  string
	reset time.Duration
}

func main() {
	var (
		addr    = flag.String("addr", "127.0.0.1:6379", "redis address host:port")
		pass    = flag.String("pass", "", "redis password")
		db      = flag.Int("db", 0, "redis db")
		route   = flag.String("route", "", "only show this route (e.g. auth.login)")
		doDel   = flag.Bool("del", false, "delete matched windows (unblocks clients)")
		timeout = flag.Duration("timeout", 2*time.Second, "per-command timeout")
	)
	flag.Parse()

	rdb := goredis.NewClient(&goredis.Options{Addr: *addr, Password: *pass, DB: *db})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "redis ping failed: %v\n", err)
		os.Exit(1)
	}

	pattern := "rl:*"
	if *route != "" {
		pattern = "rl:" + *route + ":*"
	}

	var windows []window
	var cursor uint64
	for {
		ctxScan, cancelScan := context.WithTimeout(context.Background(), *timeout)
		keys, next, err := rdb.Scan(ctxScan, cursor, pattern, 200).Result()
		cancelScan()
		if err != nil {
			fmt.Fprintf(os.Stderr, "SCAN error: %v\n", err)
			os.Exit(1)
		}

		for _, k := range keys {
			ctxCmd, cancelCmd := context.WithTimeout(context.Background(), *timeout)
			hits, _ := rdb.Get(ctxCmd, k).Result() // expired between SCAN and GET shows empty
			ttl, _ := rdb.PTTL(ctxCmd, k).Result()
			cancelCmd()

			w := window{hits: hits, reset: ttl}
			// rl:<route>:<ip>:<bucket>; route may itself contain dots but no colons.
			if parts := strings.Split(k, ":"); len(parts) >= 4 {
				w.route = parts[1]
				w.ip = strings.Join(parts[2:len(parts)-1], ":") // IPv6 addresses carry colons
			} else {
				w.route = k
			}
			windows = append(windows, w)

			if *doDel {
				ctxDel, cancelDel := context.WithTimeout(context.Background(), *timeout)
				if err := rdb.Del(ctxDel, k).Err(); err != nil {
					fmt.Fprintf(os.Stderr, "DEL %s: %v\n", k, err)
				}
				cancelDel()
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(windows) == 0 {
		fmt.Printf("No active windows for pattern %q.\n", pattern)
		return
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].route != windows[j].route {
			return windows[i].route < windows[j].route
		}
		return windows[i].ip < windows[j].ip
	})

	fmt.Printf("%-16s %-40s %-6s %s\n", "ROUTE", "CLIENT", "HITS", "RESETS IN")
	for _, w := range windows {
		fmt.Printf("%-16s %-40s %-6s %s\n", w.route, w.ip, w.hits, w.reset.Round(time.Second))
	}
	if *doDel {
		fmt.Printf("Deleted %d window(s).\n", len(windows))
	}
}
