package gravatar

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
)

const testKey = "0c7e6a405862e402eb76a70f8a26fc732d07c32931e9fae9ab1582911d2e8a3b"

type MockServer struct {
	*httptest.Server
	lastAuth      string
	lastUserAgent string
	lastSelected  string
	status        int
}

func NewMockServer() *MockServer {
	mock := &MockServer{status: http.StatusOK}
	mux := http.NewServeMux()

	mux.HandleFunc("/profiles/", func(w http.ResponseWriter, r *http.Request) {
		mock.lastAuth = r.Header.Get("Authorization")
		mock.lastUserAgent = r.Header.Get("User-Agent")

		if mock.status != http.StatusOK {
			w.WriteHeader(mock.status)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
			return
		}

		if r.URL.Path != "/profiles/"+testKey {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hash":"` + testKey + `","display_name":"Ada","number_verified_accounts":2}`))
	})

	mux.HandleFunc("/me/avatars", func(w http.ResponseWriter, r *http.Request) {
		mock.lastAuth = r.Header.Get("Authorization")
		mock.lastSelected = r.URL.Query().Get("selected_email_hash")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"image_id":"one","image_url":"` + mock.URL + `/img/one.png","selected":false},
			{"image_id":"two","image_url":"` + mock.URL + `/img/two.png","selected":true}
		]`))
	})

	mux.HandleFunc("/img/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG\r\n\x1a\n" + r.URL.Path))
	})

	mock.Server = httptest.NewServer(mux)
	return mock
}

func TestGetProfile(t *testing.T) {
	Convey("Given a client against a mock Gravatar API", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := NewClient("secret", WithBaseURL(server.URL), WithTimeout(2*time.Second))

		Convey("When fetching a known profile", func() {
			doc, err := client.GetProfile(context.Background(), testKey)

			Convey("Then the document is decoded", func() {
				So(err, ShouldBeNil)
				So(doc["display_name"], ShouldEqual, "Ada")
			})

			Convey("Then the bearer token and user agent are sent", func() {
				So(server.lastAuth, ShouldEqual, "Bearer secret")
				So(server.lastUserAgent, ShouldEqual, DefaultUserAgent)
			})
		})

		Convey("When the profile does not exist", func() {
			doc, err := client.GetProfile(context.Background(), "missing")

			Convey("Then a not found error is returned", func() {
				So(doc, ShouldBeNil)
				So(stderrors.Is(err, errors.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the API fails", func() {
			server.status = http.StatusInternalServerError
			_, err := client.GetProfile(context.Background(), testKey)

			Convey("Then a transport error carries the status", func() {
				So(stderrors.Is(err, errors.ErrTransport), ShouldBeTrue)

				var statusErr *StatusError
				So(stderrors.As(err, &statusErr), ShouldBeTrue)
				So(statusErr.StatusCode, ShouldEqual, http.StatusInternalServerError)
				So(statusErr.Body, ShouldContainSubstring, "nope")
			})
		})

		Convey("When the server is unreachable", func() {
			server.Close()
			_, err := client.GetProfile(context.Background(), testKey)

			Convey("Then a transport error is returned", func() {
				So(stderrors.Is(err, errors.ErrTransport), ShouldBeTrue)
			})
		})
	})
}

func TestListAvatars(t *testing.T) {
	Convey("Given a client against a mock Gravatar API", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := NewClient("secret", WithBaseURL(server.URL+"/"))

		Convey("When listing with a selection hash", func() {
			records, err := client.ListAvatars(context.Background(), testKey)

			Convey("Then the hash is passed as a query parameter", func() {
				So(err, ShouldBeNil)
				So(server.lastSelected, ShouldEqual, testKey)
			})

			Convey("Then the records keep the API order", func() {
				So(records, ShouldHaveLength, 2)
				So(records[0].ImageID, ShouldEqual, "one")
				So(records[1].Selected, ShouldBeTrue)
			})
		})

		Convey("When listing without a selection hash", func() {
			_, err := client.ListAvatars(context.Background(), "")

			Convey("Then no query parameter is sent", func() {
				So(err, ShouldBeNil)
				So(server.lastSelected, ShouldBeEmpty)
			})
		})
	})
}

func TestFetchImage(t *testing.T) {
	Convey("Given an image host", t, func() {
		server := NewMockServer()
		defer server.Close()
		client := NewClient("secret", WithBaseURL(server.URL))

		Convey("When fetching an image", func() {
			image, err := client.FetchImage(context.Background(), server.URL+"/img/two.png")

			Convey("Then the bytes and MIME type are returned without credentials", func() {
				So(err, ShouldBeNil)
				So(image.MIMEType, ShouldEqual, "image/png")
				So(string(image.Data), ShouldEndWith, "/img/two.png")
			})
		})

		Convey("When the URL is empty", func() {
			_, err := client.FetchImage(context.Background(), "")
			So(stderrors.Is(err, errors.ErrInvalidInput), ShouldBeTrue)
		})

		Convey("When the image is missing", func() {
			_, err := client.FetchImage(context.Background(), server.URL+"/nothing")
			So(err, ShouldNotBeNil)
		})
	})
}
