package services_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/folio-backend/internal/domain/entities"
	"github.com/rafabene/folio-backend/internal/services"
)

func TestFeedService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "FeedService Suite")
}

var _ = Describe("FeedService", func() {
	var (
		env   *testEnv
		svc   *services.FeedService
		alice *entities.User
		bob   *entities.User
		carol *entities.User
		base  time.Time
	)

	BeforeEach(func() {
		env = setupTestEnv(GinkgoT())
		svc = env.feedService()
		alice = env.seedUser(GinkgoT(), "alice")
		bob = env.seedUser(GinkgoT(), "bob")
		carol = env.seedUser(GinkgoT(), "carol")
		base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	})

	Context("viewer anônimo", func() {
		It("recebe o feed global de posts publicados", func() {
			env.seedPost(GinkgoT(), bob.ID, "from-bob", timePtr(base))
			env.seedPost(GinkgoT(), carol.ID, "from-carol", timePtr(base.Add(time.Hour)))
			env.seedPost(GinkgoT(), carol.ID, "draft", nil)

			views, err := svc.GetFeed(context.Background(), nil, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(2))
			Expect(views[0].Post.Slug).To(Equal("from-carol"))
			Expect(views[1].Post.Slug).To(Equal("from-bob"))
		})
	})

	Context("viewer que não segue ninguém", func() {
		It("recebe o feed global, não um feed vazio", func() {
			env.seedPost(GinkgoT(), bob.ID, "from-bob", timePtr(base))

			views, err := svc.GetFeed(context.Background(), &alice.ID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].Post.Slug).To(Equal("from-bob"))
		})
	})

	Context("viewer seguindo autores", func() {
		BeforeEach(func() {
			Expect(env.followService().Follow(context.Background(), alice.ID, bob.ID)).To(Succeed())
		})

		It("vê apenas posts publicados dos autores seguidos", func() {
			env.seedPost(GinkgoT(), bob.ID, "from-bob", timePtr(base))
			env.seedPost(GinkgoT(), carol.ID, "from-carol", timePtr(base.Add(time.Hour)))

			views, err := svc.GetFeed(context.Background(), &alice.ID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].Post.Slug).To(Equal("from-bob"))
		})

		It("não vê rascunhos dos autores seguidos", func() {
			env.seedPost(GinkgoT(), bob.ID, "draft", nil)

			views, err := svc.GetFeed(context.Background(), &alice.ID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(BeEmpty())
		})

		It("resolve o autor de cada post", func() {
			env.seedPost(GinkgoT(), bob.ID, "from-bob", timePtr(base))

			views, err := svc.GetFeed(context.Background(), &alice.ID, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views[0].Author).NotTo(BeNil())
			Expect(views[0].Author.Username).To(Equal("bob"))
		})
	})

	Context("ordenação e paginação", func() {
		BeforeEach(func() {
			env.seedPost(GinkgoT(), bob.ID, "p1", timePtr(base))
			env.seedPost(GinkgoT(), bob.ID, "p2", timePtr(base.Add(time.Hour)))
			env.seedPost(GinkgoT(), bob.ID, "p3", timePtr(base.Add(2*time.Hour)))
		})

		It("ordena por published_at decrescente", func() {
			views, err := svc.GetFeed(context.Background(), nil, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(3))
			Expect(views[0].Post.Slug).To(Equal("p3"))
			Expect(views[1].Post.Slug).To(Equal("p2"))
			Expect(views[2].Post.Slug).To(Equal("p1"))
		})

		It("pagina com limit e offset", func() {
			views, err := svc.GetFeed(context.Background(), nil, 1, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].Post.Slug).To(Equal("p2"))
		})

		It("offset além do fim retorna lista vazia", func() {
			views, err := svc.GetFeed(context.Background(), nil, 20, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(views).To(BeEmpty())
		})
	})
})
