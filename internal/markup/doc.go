// Package markup parses the leaf-node markup language into an ordered,
// gapless segmentation of the source text.
//
// The grammar is a small set of backslash directives:
//
//	\cite{name}            citation reference
//	\embed{url}            video/media embed (legacy bare "embed{url}" accepted)
//	\heading{text}         level-1 heading
//	\subheading{text}      level-2 heading
//	\subsubheading{text}   level-3 heading
//	\item{text}            standalone bullet, or list item inside begin/end
//	\link{text, url}       hyperlink
//	\tag{path}             cross-reference to another content node
//	\begin{itemize}        bullet list        ... \end{itemize}
//	\begin{enumerate}      numbered list      ... \end{enumerate}
//	\begin{list}[marker]   arrow/custom list  ... \end{list}
//	{numeric=false|true}   numbering control
//	{style=numeric|alphabetic|none}
//
// Parsing never fails. List blocks are discovered first and claim their
// span; directives found inside a claimed span belong to the list and are
// not emitted at the top level. Remaining directives and list blocks are
// merged by offset, and the gaps between them become text segments, so the
// raw spans of all segments concatenate back to the normalized input.
//
// Offsets are byte offsets into the normalized text (see Normalize).
package markup
