package view

import (
	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
)

// Page is what every full page needs to draw the shell and header.
type Page struct {
	Title      string
	LoggedIn   bool
	User       domain.User
	HeaderFlow flow.Snapshot
}

const baseCSS = `body{margin:0;font-family:system-ui,sans-serif;color:#00064d}
.header{display:flex;align-items:center;justify-content:space-between;padding:12px 24px;background:#fff;border-bottom:1px solid #ddd}
.nav a,.nav button,.auth a{margin-right:16px}
.btn{background:#00064d;color:#fff;border:0;padding:8px 16px;border-radius:4px;cursor:pointer;text-decoration:none}
.btn-outline{background:#fff;color:#00064d;border:1px solid #00064d;padding:8px 16px;border-radius:4px;cursor:pointer}
.link{background:none;border:0;color:#00064d;cursor:pointer;padding:0}
.inline{display:inline}
.avatar{display:inline-block;width:32px;height:32px;border-radius:50%;background:#00064d;color:#fff;text-align:center;line-height:32px;margin-right:8px}
.modal-backdrop{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center}
.modal{background:#fff;padding:24px;border-radius:8px;width:min(640px,92vw);max-height:90vh;overflow:auto}
.error{color:#dc2626}
.notice{color:#15803d}
.input{width:100%;padding:8px;margin:4px 0 12px;box-sizing:border-box}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:12px}
.tabs a{margin-right:16px;padding:8px 0;display:inline-block}
.tabs a.active{border-bottom:2px solid #00064d;font-weight:600}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(320px,1fr));gap:24px;padding:24px}
.card{background:#eff6ff;border-radius:8px;padding:16px}
.badge.attempted{margin-left:8px;color:#15803d}
.hero{padding:48px 24px;background:#00064d;color:#fff}
.footer{padding:24px;text-align:center;border-top:1px solid #ddd}
.not-found{text-align:center;padding:80px 24px}
section{padding:24px}`

func titled(p Page, title string) Page {
	p.Title = title
	return p
}
