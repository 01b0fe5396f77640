package handlers

import "net/url"

func urlQuery(v string) string {
	return url.QueryEscape(v)
}
