package store

import (
	"time"

	"go.uber.org/zap"
)

func strptr(value string) *string {
	return &value
}

// Seed populates an empty store with the default site content: three
// starter pages and the four-entry internal navigation menu. A store
// that already holds pages or menu items is left untouched.
func Seed(s Store, now time.Time, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	pages, err := s.ListPages()
	if err != nil {
		return err
	}
	items, err := s.ListMenuItems()
	if err != nil {
		return err
	}
	if len(pages) > 0 || len(items) > 0 {
		return nil
	}

	defaultPages := []Page{
		{
			Title:   "Início",
			Slug:    "home",
			Content: `<h1 class="text-3xl font-bold mb-6">Bem-vindo ao Meu Site</h1><p class="mb-4">Esta é a página inicial do site. Você pode editar este conteúdo na área administrativa.</p>`,
		},
		{
			Title:   "Serviços",
			Slug:    "servicos",
			Content: `<h1 class="text-3xl font-bold mb-6">Nossos Serviços</h1><p class="mb-4">Aqui você encontrará informações sobre os serviços oferecidos.</p>`,
		},
		{
			Title:   "Informações do Site",
			Slug:    "site",
			Content: `<h1 class="text-3xl font-bold mb-6">Sobre o Site</h1><p class="mb-4">Informações sobre este site e como ele foi desenvolvido.</p>`,
		},
	}
	for i := range defaultPages {
		defaultPages[i].CreatedAt = now
		defaultPages[i].UpdatedAt = now
		if err := s.CreatePage(&defaultPages[i]); err != nil {
			return err
		}
	}

	defaultMenu := []MenuItem{
		{Text: "Início", Position: 1, Type: MenuItemTypeInternal, InternalLink: strptr("home")},
		{Text: "Serviços", Position: 2, Type: MenuItemTypeInternal, InternalLink: strptr("servicos")},
		{Text: "Site", Position: 3, Type: MenuItemTypeInternal, InternalLink: strptr("site")},
		{Text: "Alex", Position: 4, Type: MenuItemTypeInternal, InternalLink: strptr("alex")},
	}
	for i := range defaultMenu {
		if err := s.CreateMenuItem(&defaultMenu[i]); err != nil {
			return err
		}
	}

	logger.Info("seeded default site content",
		zap.Int("pages", len(defaultPages)),
		zap.Int("menu_items", len(defaultMenu)))
	return nil
}
