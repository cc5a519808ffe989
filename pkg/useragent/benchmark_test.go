package useragent_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrymomot/uasniff/pkg/useragent"
)

const (
	samsungBrowserUA = "Mozilla/5.0 (Linux; Android 11; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/14.0 Chrome/87.0.4280.141 Mobile Safari/537.36"
	ucBrowserUA      = "Mozilla/5.0 (Linux; U; Android 11; en-US; SM-A515F) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/78.0.3904.108 UCBrowser/13.4.0.1306 Mobile Safari/537.36"
)

// Sinks keep the compiler from removing the calls.
var (
	result   useragent.UserAgent
	err      error
	matched  bool
	category string
	version  string
)

func BenchmarkParse_ChromeDesktop(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(windowsUA)
	}
}

func BenchmarkParse_SafariMobile(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(iPhoneUA)
	}
}

func BenchmarkParse_EdgeBrowser(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(edgeUA)
	}
}

func BenchmarkParse_AndroidTablet(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(galaxyTabUA)
	}
}

func BenchmarkParse_Bot(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(googlebotUA)
	}
}

func BenchmarkParse_SamsungBrowser(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(samsungBrowserUA)
	}
}

func BenchmarkParse_UCBrowser(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(ucBrowserUA)
	}
}

func BenchmarkParse_Empty(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse("")
	}
}

func BenchmarkParse_LongUserAgent(b *testing.B) {
	long := windowsUA + strings.Repeat(" Extension/1.0", 50)
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Parse(long)
	}
}

func BenchmarkDetect_Headers(b *testing.B) {
	h := http.Header{}
	h.Set("User-Agent", iPhoneUA)
	h.Set("Accept-Language", "fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5")
	b.ReportAllocs()
	for b.Loop() {
		result, err = useragent.Detect(h)
	}
}

func BenchmarkDetector_Device(b *testing.B) {
	d := useragent.New()
	b.ReportAllocs()
	for b.Loop() {
		category, matched = d.Device(pixelUA)
	}
}

func BenchmarkDetector_Is(b *testing.B) {
	d := useragent.New()
	b.ReportAllocs()
	for b.Loop() {
		matched, err = d.Is("Chrome", windowsUA)
	}
}

func BenchmarkDetector_Version(b *testing.B) {
	d := useragent.New()
	b.ReportAllocs()
	for b.Loop() {
		version = d.Version("Chrome", windowsUA)
	}
}

func BenchmarkDetector_Robot(b *testing.B) {
	d := useragent.New()
	b.ReportAllocs()
	for b.Loop() {
		category, matched = d.Robot(bingbotUA)
	}
}

func BenchmarkParse_Parallel(b *testing.B) {
	agents := []string{windowsUA, iPhoneUA, edgeUA, galaxyTabUA, googlebotUA, samsungBrowserUA, ucBrowserUA}
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = useragent.Parse(agents[i%len(agents)])
			i++
		}
	})
}
