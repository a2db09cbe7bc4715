package container

import (
	"github.com/samber/do"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/route"
	"github.com/serroba/marketplace-routes/internal/seo"
	"go.uber.org/zap"
)

// SEOPackage provides the SEO URL generator.
func SEOPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*seo.Generator, error) {
		generateID, err := seo.NewSeoIDGenerator()
		if err != nil {
			return nil, err
		}

		return seo.NewGenerator(
			do.MustInvoke[seo.Repository](i),
			generateID,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// ProfilePackage provides the profile service and its code assigner.
func ProfilePackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*profile.IDAssigner, error) {
		generate, err := profile.NewDigitGenerator()
		if err != nil {
			return nil, err
		}

		return profile.NewIDAssigner(
			do.MustInvoke[profile.Repository](i),
			generate,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	do.Provide(i, func(i *do.Injector) (*profile.Service, error) {
		return profile.NewService(
			do.MustInvoke[profile.Repository](i),
			do.MustInvoke[*profile.IDAssigner](i),
		), nil
	})
}

// RoutePackage provides the path resolver.
func RoutePackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*route.Resolver, error) {
		return route.NewResolver(
			do.MustInvoke[seo.Repository](i),
			do.MustInvoke[profile.Repository](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}
