package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/taiact/configs"
	"github.com/reusee/taiact/logs"
	"github.com/reusee/taiact/modes"
	"github.com/samber/lo"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	if mode == modes.ModeDevelopment {
		return ""
	}
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()
	return lo.CoalesceOrEmpty(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		configs.First[ProxyAddr](loader, "proxy_address"),
		configs.First[ProxyAddr](loader, "http_proxy"),
		configs.First[ProxyAddr](loader, "socks_proxy"),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTPS_PROXY")),
		ProxyAddr(os.Getenv("https_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
	)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	addr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if addr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(addr))
		if err != nil {
			return nil, fmt.Errorf("parse proxy address: %w", err)
		}
		switch u.Scheme {
		case "socks", "socks5h":
			u.Scheme = "socks5"
		case "":
			return nil, fmt.Errorf("proxy address without scheme: %s", addr)
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := new(net.Dialer)
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		d, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		ctxDialer, ok := d.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy dialer for %s does not support contexts", u.Scheme)
		}
		return ctxDialer, nil
	})
}
