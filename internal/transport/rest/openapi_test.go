package rest

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Rest Suite")
}

var _ = ginkgo.Describe("OpenAPI document", func() {
	var doc *openapi3.T

	ginkgo.BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.It("should be a valid OpenAPI 3 document", func() {
		gomega.Expect(doc.Validate(context.Background())).To(gomega.Succeed())
	})

	ginkgo.It("should document every mounted route group", func() {
		for _, path := range []string{
			"/auth/login",
			"/auth/refresh",
			"/auth/logout",
			"/session",
			"/permissions",
			"/permissions/reset",
			"/personnel",
			"/citations",
			"/videos",
			"/registrations",
			"/registrations/{id}/approve",
		} {
			gomega.Expect(doc.Paths.Find(path)).ToNot(gomega.BeNil(), path)
		}
	})
})
